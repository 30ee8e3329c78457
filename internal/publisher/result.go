package publisher

// Outcome is the terminal state of one blueprint within a run.
type Outcome string

const (
	OutcomePublished Outcome = "published"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

// Skip reasons surfaced in results and metrics.
const (
	SkipNoProviders = "no print providers"
	SkipNoVariants  = "no variants"
)

// Result records what happened to a single blueprint. Exactly one of
// ProductID, SkipReason, or Err is meaningful, matching the Outcome.
type Result struct {
	BlueprintID   int
	BlueprintName string
	Outcome       Outcome
	ProductID     string
	SkipReason    string
	Err           error
}

// Summary aggregates per-blueprint results for the whole run.
type Summary struct {
	Total     int
	Published int
	Skipped   int
	Failed    int
}

// Summarize folds results into counts.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Outcome {
		case OutcomePublished:
			s.Published++
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeFailed:
			s.Failed++
		}
	}
	return s
}
