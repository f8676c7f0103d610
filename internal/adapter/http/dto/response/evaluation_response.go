package response

import "interlab/internal/domain/evaluation"

type CriterionResponse struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

type CriteriaResponse struct {
	TotalWeight int                 `json:"total_weight"`
	MinRating   int                 `json:"min_rating"`
	MaxRating   int                 `json:"max_rating"`
	Criteria    []CriterionResponse `json:"criteria"`
}

func FromWeightTable(t evaluation.WeightTable) CriteriaResponse {
	res := CriteriaResponse{
		TotalWeight: t.TotalWeight(),
		MinRating:   evaluation.MinRating,
		MaxRating:   evaluation.MaxRating,
		Criteria:    make([]CriterionResponse, 0, len(t)),
	}
	for _, c := range t {
		res.Criteria = append(res.Criteria, CriterionResponse(c))
	}
	return res
}
