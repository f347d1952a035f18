package contentgap

// State identifies a stage of an analysis run. Each run moves through the
// states in declaration order and ends in StateDone or StateFailed.
type State string

// Analysis run states.
const (
	StateAwaitingInput       State = "awaiting_input"
	StateFetchingCompetitors State = "fetching_competitors"
	StateExtractingPages     State = "extracting_pages"
	StateBuildingProfile     State = "building_profile"
	StateScoring             State = "scoring"
	StateDone                State = "done"
	StateFailed              State = "failed"
)

// AnalysisRequest carries the inputs for one analysis run.
type AnalysisRequest struct {
	Keyword      string
	DraftContent string
}

// Validate returns an error if the request is missing required fields.
func (r *AnalysisRequest) Validate() error {
	if r.Keyword == "" {
		return Errorf(EINVALID, "keyword required")
	}
	if r.DraftContent == "" {
		return Errorf(EINVALID, "draft content required")
	}
	return nil
}

// CompetitorSummary is a condensed view of one extracted competitor page.
type CompetitorSummary struct {
	Address    string
	H1Headings []string
	BodyLength int
}

// AnalysisResult is the final output of an analysis run.
type AnalysisResult struct {
	// Score is the percentage of competitor keywords present in the
	// draft, in [0, 100].
	Score float64

	// MatchedTerms are competitor keywords found in the draft, in the
	// profile's ranked order.
	MatchedTerms []string

	// MissingTerms are competitor keywords absent from the draft, in the
	// profile's ranked order, capped at 10.
	MissingTerms []string

	// RecommendedTerms are the top competitor keywords, capped at 10.
	RecommendedTerms []string

	// CompetitorSummaries covers at most the first 3 analyzed pages.
	CompetitorSummaries []CompetitorSummary
}

// Progress reports a state transition or per-page event during a run.
type Progress struct {
	State     State
	Completed int
	Total     int
	Address   string
	Err       error
}

// ProgressFunc is called as an analysis run advances.
type ProgressFunc func(Progress)
