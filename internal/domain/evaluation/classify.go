package evaluation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"interlab/internal/domain/entities"
)

var (
	ErrInvalidEvaluationType = errors.New("invalid evaluation type")
	ErrEmptyRatings          = errors.New("innovative evaluation requires ratings")
	ErrUnknownCriterion      = errors.New("unknown criterion")
	ErrRatingOutOfRange      = errors.New("rating out of range")
	ErrRelevanceOutOfRange   = errors.New("relevance score out of range")
	ErrJustificationRequired = errors.New("justification required")
)

// Input is one committee verdict on an idea.
type Input struct {
	Type           entities.Classification
	Ratings        map[string]int
	RelevanceScore int
	Justification  string
	EvaluatorID    string
	Date           time.Time
}

// Outcome is the classification produced by an evaluation.
type Outcome struct {
	Classification entities.Classification
	FinalScore     float64
	Evaluation     entities.Evaluation
}

// Classify validates in and computes the resulting classification and score.
//
//   - INOVADORA: ratings must be non-empty, reference known criteria and lie in
//     [MinRating, MaxRating]; the score is the weighted average.
//   - MELHORIA_CONTINUA / NAO_APLICAVEL: score 0, justification mandatory.
//     Continuous improvement also records a relevance score (default MinRating).
func (t WeightTable) Classify(in Input) (Outcome, error) {
	ev := entities.Evaluation{
		EvaluatorID: in.EvaluatorID,
		Type:        in.Type,
		Date:        in.Date,
	}

	switch in.Type {
	case entities.ClassificationInnovative:
		if len(in.Ratings) == 0 {
			return Outcome{}, ErrEmptyRatings
		}
		for id, r := range in.Ratings {
			if !t.Has(id) {
				return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownCriterion, id)
			}
			if r < MinRating || r > MaxRating {
				return Outcome{}, fmt.Errorf("%w: %s=%d", ErrRatingOutOfRange, id, r)
			}
		}
		for _, c := range t {
			if r, ok := in.Ratings[c.ID]; ok {
				ev.Scores = append(ev.Scores, entities.CriterionScore{CriterionID: c.ID, Score: r})
			}
		}
		return Outcome{
			Classification: entities.ClassificationInnovative,
			FinalScore:     t.WeightedScore(in.Ratings),
			Evaluation:     ev,
		}, nil

	case entities.ClassificationContinuousImprovement, entities.ClassificationNotApplicable:
		justification := strings.TrimSpace(in.Justification)
		if justification == "" {
			return Outcome{}, ErrJustificationRequired
		}
		ev.Justification = justification
		if in.Type == entities.ClassificationContinuousImprovement {
			relevance := in.RelevanceScore
			if relevance == 0 {
				relevance = MinRating
			}
			if relevance < MinRating || relevance > MaxRating {
				return Outcome{}, fmt.Errorf("%w: %d", ErrRelevanceOutOfRange, relevance)
			}
			ev.RelevanceScore = relevance
		}
		return Outcome{Classification: in.Type, FinalScore: 0, Evaluation: ev}, nil
	}

	return Outcome{}, fmt.Errorf("%w: %q", ErrInvalidEvaluationType, in.Type)
}

// Apply replaces any previous evaluation of idea with o.
func (o Outcome) Apply(idea entities.Idea) entities.Idea {
	idea.Classification = o.Classification
	idea.FinalScore = o.FinalScore
	idea.Evaluations = []entities.Evaluation{o.Evaluation}
	return idea
}
