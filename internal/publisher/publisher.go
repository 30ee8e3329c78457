// Package publisher runs the catalog publishing workflow: upload the
// artwork once, then walk every blueprint and create + publish a branded
// product for it, isolating failures per blueprint.
package publisher

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"printify-automation/internal/common/errors"
	"printify-automation/internal/common/logger"
	"printify-automation/internal/common/metrics"
	"printify-automation/internal/printify"
)

// Branding and pricing applied to every listing.
const (
	titleSuffix           = " – African Heritage Series"
	descriptionTemplate   = "Celebrate African pride and culture with this exclusive '%s' featuring the iconic FC Cabo Verde logo. Perfect for supporters of African design and football heritage."
	unitPriceCents        = 2500
	maxVariantsPerListing = 2
	defaultPrintPosition  = "front"
	imageCenterX          = 0.5
	imageCenterY          = 0.5
	imageScale            = 1.0
	imageAngle            = 0
)

// CatalogAPI is the slice of the vendor client the workflow consumes.
type CatalogAPI interface {
	UploadImage(ctx context.Context, path string) (string, error)
	ListBlueprints(ctx context.Context) ([]printify.Blueprint, error)
	ListPrintProviders(ctx context.Context, blueprintID int) ([]printify.PrintProvider, error)
	ListVariants(ctx context.Context, blueprintID, providerID int) ([]printify.Variant, error)
	CreateProduct(ctx context.Context, product *printify.Product) (string, error)
	PublishProduct(ctx context.Context, productID string, opts printify.PublishOptions) error
}

// Publisher orchestrates one run.
type Publisher struct {
	api      CatalogAPI
	logger   logger.Logger
	logoPath string
}

// New builds a Publisher. The logger may be nil, in which case a default
// structured logger is used.
func New(api CatalogAPI, logoPath string, log logger.Logger) *Publisher {
	if log == nil {
		log = logger.NewStructured("info", "json")
	}
	return &Publisher{
		api:      api,
		logger:   log,
		logoPath: logoPath,
	}
}

// Run executes the whole workflow. The returned error is non-nil only for
// run-fatal conditions (artwork upload, blueprint listing); individual
// blueprint failures are folded into the results and never abort the run.
func (p *Publisher) Run(ctx context.Context) ([]Result, Summary, error) {
	runID := uuid.NewString()
	log := p.logger.WithFields(map[string]interface{}{"runId": runID})

	log.Info("Uploading artwork", map[string]interface{}{
		"path": p.logoPath,
	})

	imageID, err := p.api.UploadImage(ctx, p.logoPath)
	if err != nil {
		return nil, Summary{}, errors.NewUploadFailedError(err)
	}

	log.Info("Artwork uploaded", map[string]interface{}{
		"imageId": imageID,
	})

	blueprints, err := p.api.ListBlueprints(ctx)
	if err != nil {
		return nil, Summary{}, errors.NewCatalogFetchFailedError("blueprints", err)
	}

	log.Info("Fetched blueprint catalog", map[string]interface{}{
		"count": len(blueprints),
	})

	results := make([]Result, 0, len(blueprints))
	for _, blueprint := range blueprints {
		result := p.processBlueprint(ctx, log, blueprint, imageID)
		results = append(results, result)
		recordOutcome(result)
	}

	summary := Summarize(results)
	log.Info("Run complete", map[string]interface{}{
		"total":     summary.Total,
		"published": summary.Published,
		"skipped":   summary.Skipped,
		"failed":    summary.Failed,
	})

	return results, summary, nil
}

// processBlueprint runs discovery and listing creation for one blueprint.
// Every failure comes back as a Result; nothing here aborts the run.
func (p *Publisher) processBlueprint(ctx context.Context, log logger.Logger, blueprint printify.Blueprint, imageID string) Result {
	name := blueprint.DisplayName()
	result := Result{
		BlueprintID:   blueprint.ID,
		BlueprintName: name,
	}

	providers, err := p.api.ListPrintProviders(ctx, blueprint.ID)
	if err != nil {
		return p.failed(log, result, errors.NewCatalogFetchFailedError("print_providers", err))
	}
	if len(providers) == 0 {
		log.Warn("No print providers for blueprint", map[string]interface{}{
			"blueprint": name,
		})
		result.Outcome = OutcomeSkipped
		result.SkipReason = SkipNoProviders
		return result
	}

	provider := providers[0]

	variants, err := p.api.ListVariants(ctx, blueprint.ID, provider.ID)
	if err != nil {
		return p.failed(log, result, errors.NewCatalogFetchFailedError("variants", err))
	}
	if len(variants) == 0 {
		log.Warn("No variants for provider of blueprint", map[string]interface{}{
			"blueprint":  name,
			"providerId": provider.ID,
		})
		result.Outcome = OutcomeSkipped
		result.SkipReason = SkipNoVariants
		return result
	}

	product := buildProduct(blueprint, provider, variants, imageID)

	productID, err := p.api.CreateProduct(ctx, product)
	if err != nil {
		return p.failed(log, result, errors.NewProductCreateFailedError(err))
	}

	log.Info("Created product", map[string]interface{}{
		"blueprint": name,
		"title":     product.Title,
		"productId": productID,
	})

	if err := p.api.PublishProduct(ctx, productID, printify.PublishAll()); err != nil {
		return p.failed(log, result, errors.NewProductPublishFailedError(productID, err))
	}

	log.Info("Published product", map[string]interface{}{
		"blueprint": name,
		"productId": productID,
	})

	result.Outcome = OutcomePublished
	result.ProductID = productID
	return result
}

func (p *Publisher) failed(log logger.Logger, result Result, err error) Result {
	log.WithError(err).Error("Blueprint processing failed", map[string]interface{}{
		"blueprint": result.BlueprintName,
	})
	result.Outcome = OutcomeFailed
	result.Err = err
	return result
}

// buildProduct assembles the creation payload for one blueprint: fixed
// branding title and description, the first two variants priced and
// enabled, and a single centered placeholder for the uploaded artwork.
func buildProduct(blueprint printify.Blueprint, provider printify.PrintProvider, variants []printify.Variant, imageID string) *printify.Product {
	selected := variants
	if len(selected) > maxVariantsPerListing {
		selected = selected[:maxVariantsPerListing]
	}

	variantIDs := make([]int, 0, len(selected))
	productVariants := make([]printify.ProductVariant, 0, len(selected))
	for _, v := range selected {
		variantIDs = append(variantIDs, v.ID)
		productVariants = append(productVariants, printify.ProductVariant{
			ID:        v.ID,
			Price:     unitPriceCents,
			IsEnabled: true,
		})
	}

	position := defaultPrintPosition
	if len(variants[0].PrintAreas) > 0 && variants[0].PrintAreas[0].Position != "" {
		position = variants[0].PrintAreas[0].Position
	}

	name := blueprint.DisplayName()

	return &printify.Product{
		Title:           name + titleSuffix,
		Description:     fmt.Sprintf(descriptionTemplate, name),
		BlueprintID:     blueprint.ID,
		PrintProviderID: provider.ID,
		Variants:        productVariants,
		PrintAreas: []printify.ProductPrintArea{
			{
				VariantIDs: variantIDs,
				Placeholders: []printify.Placeholder{
					{
						Position: position,
						Images: []printify.PlacedImage{
							{
								ID:    imageID,
								X:     imageCenterX,
								Y:     imageCenterY,
								Scale: imageScale,
								Angle: imageAngle,
							},
						},
					},
				},
			},
		},
	}
}

func recordOutcome(result Result) {
	switch result.Outcome {
	case OutcomePublished:
		metrics.BlueprintsPublished.Inc()
	case OutcomeSkipped:
		metrics.BlueprintsSkipped.WithLabelValues(result.SkipReason).Inc()
	case OutcomeFailed:
		metrics.BlueprintsFailed.WithLabelValues(errors.CodeOf(result.Err)).Inc()
	}
}
