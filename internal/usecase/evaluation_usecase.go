package usecase

import (
	"context"
	"log"
	"time"

	"interlab/internal/domain/entities"
	"interlab/internal/domain/evaluation"
	"interlab/internal/usecase/interfaces"
)

// EvaluationInput is a committee verdict as submitted by an evaluator.
type EvaluationInput struct {
	Type           entities.Classification
	Ratings        map[string]int
	RelevanceScore int
	Justification  string
}

// IEvaluationUseCase exposes the committee classification workflow.
type IEvaluationUseCase interface {
	PendingQueue(ctx context.Context, p entities.Principal) ([]entities.Idea, error)
	Evaluate(ctx context.Context, p entities.Principal, ideaID string, in EvaluationInput) (entities.Idea, error)
	Criteria() evaluation.WeightTable
}

type EvaluationUseCase struct {
	repo     interfaces.IIdeaRepository
	criteria evaluation.WeightTable
	now      func() time.Time
}

var _ IEvaluationUseCase = (*EvaluationUseCase)(nil)

func NewEvaluationUseCase(repo interfaces.IIdeaRepository) *EvaluationUseCase {
	return &EvaluationUseCase{
		repo:     repo,
		criteria: evaluation.Criteria,
		now:      time.Now,
	}
}

func isEvaluator(p entities.Principal) bool {
	return p.HasAnyRole(entities.RoleComite, entities.RoleGreenBelt, entities.RoleAdmin)
}

func (u *EvaluationUseCase) PendingQueue(ctx context.Context, p entities.Principal) ([]entities.Idea, error) {
	if !isEvaluator(p) {
		return nil, ErrRoleNotAllowed
	}
	return listIdeas(ctx, u.repo, p, IdeaFilter{Classification: entities.ClassificationPending})
}

// Evaluate classifies the idea and replaces whatever evaluation it had.
func (u *EvaluationUseCase) Evaluate(ctx context.Context, p entities.Principal, ideaID string, in EvaluationInput) (entities.Idea, error) {
	log.Printf("[evaluation][usecase] evaluate start id=%q evaluator=%s type=%s", ideaID, p.Registration, in.Type)
	if !isEvaluator(p) {
		return entities.Idea{}, ErrRoleNotAllowed
	}
	idea, err := loadIdea(ctx, u.repo, ideaID)
	if err != nil {
		return entities.Idea{}, err
	}

	outcome, err := u.criteria.Classify(evaluation.Input{
		Type:           in.Type,
		Ratings:        in.Ratings,
		RelevanceScore: in.RelevanceScore,
		Justification:  in.Justification,
		EvaluatorID:    p.Registration,
		Date:           u.now().UTC(),
	})
	if err != nil {
		log.Printf("[evaluation][usecase] invalid evaluation id=%s err=%v", idea.ID, err)
		return entities.Idea{}, validationError(err)
	}
	if prev, ok := idea.CurrentEvaluation(); ok {
		log.Printf("[evaluation][usecase] replacing evaluation id=%s previous_type=%s previous_evaluator=%s", idea.ID, prev.Type, prev.EvaluatorID)
	}

	saved, err := u.repo.SaveEvaluation(ctx, outcome.Apply(idea))
	if err != nil {
		log.Printf("[evaluation][usecase] save failed id=%s err=%v", idea.ID, err)
		return entities.Idea{}, persistenceError("save evaluation", err)
	}
	if saved.ID == "" {
		return entities.Idea{}, ErrIdeaNotFound
	}
	log.Printf("[evaluation][usecase] evaluated id=%s classification=%s score=%.2f", saved.ID, saved.Classification, saved.FinalScore)
	return saved, nil
}

func (u *EvaluationUseCase) Criteria() evaluation.WeightTable {
	return u.criteria
}
