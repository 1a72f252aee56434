package validation

import "sort"

// Recommendation priorities and types.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"

	RecommendationAddField      = "add_field"
	RecommendationCorrectFormat = "correct_format"
)

// buildRecommendations derives one recommendation per failed check that
// carries remediation text, then ranks them: high priority before medium,
// larger STP improvement first within a band. The sort is stable, so ties
// keep pipeline order.
func buildRecommendations(results []CheckResult) []Recommendation {
	recs := make([]Recommendation, 0, len(results))

	for _, r := range results {
		if r.IsValid || r.Remediation == "" {
			continue
		}

		recType := RecommendationCorrectFormat
		if r.FieldValue == "" {
			recType = RecommendationAddField
		}
		priority := PriorityMedium
		if r.Severity == SeverityError {
			priority = PriorityHigh
		}

		recs = append(recs, Recommendation{
			Type:              recType,
			FieldCode:         r.FieldCode,
			Priority:          priority,
			CurrentValue:      r.FieldValue,
			Reason:            r.Remediation,
			STPImprovement:    -r.STPImpact,
			PenaltyAvoidedAED: r.PenaltyAmountAED,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Priority != recs[j].Priority {
			return recs[i].Priority == PriorityHigh
		}
		return recs[i].STPImprovement > recs[j].STPImprovement
	})

	return recs
}
