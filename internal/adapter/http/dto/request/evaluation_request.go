package request

import (
	"strings"

	"interlab/internal/domain/entities"
	"interlab/internal/usecase"
)

// EvaluationRequest is a committee verdict. Ratings is only read for
// INOVADORA, RelevanceScore only for MELHORIA_CONTINUA.
type EvaluationRequest struct {
	Type           string         `json:"type" binding:"required"`
	Ratings        map[string]int `json:"ratings"`
	RelevanceScore int            `json:"relevance_score"`
	Justification  string         `json:"justification"`
}

func (r EvaluationRequest) ToInput() usecase.EvaluationInput {
	return usecase.EvaluationInput{
		Type:           entities.Classification(strings.ToUpper(strings.TrimSpace(r.Type))),
		Ratings:        r.Ratings,
		RelevanceScore: r.RelevanceScore,
		Justification:  r.Justification,
	}
}
