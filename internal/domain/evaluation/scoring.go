package evaluation

// WeightedScore returns sum(rating*weight)/sum(weight) over every criterion in
// the table.
//
// Criteria missing from ratings (or rated <= 0) count as MinRating: unscored
// criteria are penalized, never skipped. The function is total; callers that
// need in-range ratings validate them first (see Classify).
func (t WeightTable) WeightedScore(ratings map[string]int) float64 {
	weighted, weights := 0, 0
	for _, c := range t {
		r := ratings[c.ID]
		if r <= 0 {
			r = MinRating
		}
		weighted += r * c.Weight
		weights += c.Weight
	}
	if weights == 0 {
		return MinRating
	}
	return float64(weighted) / float64(weights)
}
