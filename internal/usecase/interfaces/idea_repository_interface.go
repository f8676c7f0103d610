package interfaces

import (
	"context"

	"interlab/internal/domain/entities"
)

// IIdeaRepository abstracts DynamoDB persistence for Idea.
//
// Lookups and updates return the zero Idea (ID == "") when the id does not
// exist. Vote increments and feedback appends are single atomic writes; no
// read-modify-write happens on the caller side.
type IIdeaRepository interface {
	Create(ctx context.Context, idea entities.Idea) (entities.Idea, error)
	GetByID(ctx context.Context, id string) (entities.Idea, error)
	List(ctx context.Context) ([]entities.Idea, error)
	UpdateContent(ctx context.Context, idea entities.Idea) (entities.Idea, error)
	SaveEvaluation(ctx context.Context, idea entities.Idea) (entities.Idea, error)
	AppendFeedback(ctx context.Context, id string, fb entities.Feedback) (entities.Idea, error)
	UpdateImplementation(ctx context.Context, id string, status entities.ImplementationStatus, agent string) (entities.Idea, error)
	// IncrementVotes returns the new vote count, or 0 when the idea is missing.
	IncrementVotes(ctx context.Context, id string) (int, error)
}
