package analyze

import "github.com/contentgap/contentgap"

// Result caps.
const (
	maxMissingTerms     = 10
	maxRecommendedTerms = 10
)

// Score compares the draft's keyword set against a competitor profile.
// The score is the percentage of competitor keywords that appear in the
// draft; an empty competitor set scores zero. Matching is exact
// lower-cased string equality, so singular and plural forms of the same
// word do not match. Matched and missing terms keep the profile's ranked
// order; missing terms are capped at 10.
func Score(userTerms map[string]bool, profile *contentgap.KeywordProfile) *contentgap.AnalysisResult {
	var matched, missing []string
	for _, tc := range profile.FrequencyRanked {
		if userTerms[tc.Term] {
			matched = append(matched, tc.Term)
		} else {
			missing = append(missing, tc.Term)
		}
	}

	result := &contentgap.AnalysisResult{MatchedTerms: matched}

	if total := len(profile.FrequencyRanked); total > 0 {
		result.Score = float64(len(matched)) / float64(total) * 100
	}

	if len(missing) > maxMissingTerms {
		missing = missing[:maxMissingTerms]
	}
	result.MissingTerms = missing

	recommended := profile.FrequencyRanked
	if len(recommended) > maxRecommendedTerms {
		recommended = recommended[:maxRecommendedTerms]
	}
	for _, tc := range recommended {
		result.RecommendedTerms = append(result.RecommendedTerms, tc.Term)
	}

	return result
}
