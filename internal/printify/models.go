package printify

// Blueprint is a vendor-defined product template (a t-shirt style, a mug)
// to be customized with artwork. The catalog endpoint labels it "title";
// older payloads carried "name", so both are accepted.
type Blueprint struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Name  string `json:"name"`
	Brand string `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`
}

// DisplayName returns the human-readable blueprint name regardless of
// which field the vendor populated.
func (b Blueprint) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.Title
}

// PrintProvider is a vendor-affiliated manufacturer able to produce a
// given blueprint.
type PrintProvider struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// VariantPrintArea describes one printable region of a variant.
type VariantPrintArea struct {
	Position string `json:"position"`
}

// Variant is a specific sellable configuration (size/color) of a
// blueprint from a given provider.
type Variant struct {
	ID         int                `json:"id"`
	Title      string             `json:"title"`
	PrintAreas []VariantPrintArea `json:"print_areas"`
}

// variantList is the wrapped form the variants endpoint returns.
type variantList struct {
	Variants []Variant `json:"variants"`
}

// UploadedImage is the vendor's record of an uploaded asset.
type UploadedImage struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
}

// ProductVariant is one priced, sellable entry of a product payload.
type ProductVariant struct {
	ID        int  `json:"id"`
	Price     int  `json:"price"` // cents
	IsEnabled bool `json:"is_enabled"`
}

// PlacedImage positions an uploaded asset inside a placeholder using
// normalized coordinates.
type PlacedImage struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
	Angle int     `json:"angle"`
}

// Placeholder is one print position with its placed images.
type Placeholder struct {
	Position string        `json:"position"`
	Images   []PlacedImage `json:"images"`
}

// ProductPrintArea binds placeholders to the variants they apply to.
type ProductPrintArea struct {
	VariantIDs   []int         `json:"variant_ids"`
	Placeholders []Placeholder `json:"placeholders"`
}

// Product is the creation payload sent to the shop products endpoint.
type Product struct {
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	BlueprintID     int                `json:"blueprint_id"`
	PrintProviderID int                `json:"print_provider_id"`
	Variants        []ProductVariant   `json:"variants"`
	PrintAreas      []ProductPrintArea `json:"print_areas"`
}

// CreatedProduct is the subset of the creation response the workflow needs.
type CreatedProduct struct {
	ID string `json:"id"`
}

// PublishOptions selects which parts of a product the publish call pushes
// to the storefront.
type PublishOptions struct {
	Title       bool `json:"title"`
	Description bool `json:"description"`
	Images      bool `json:"images"`
	Variants    bool `json:"variants"`
	Tags        bool `json:"tags"`
}

// PublishAll returns options with every flag enabled.
func PublishAll() PublishOptions {
	return PublishOptions{
		Title:       true,
		Description: true,
		Images:      true,
		Variants:    true,
		Tags:        true,
	}
}
