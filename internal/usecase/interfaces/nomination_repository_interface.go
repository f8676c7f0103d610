package interfaces

import (
	"context"

	"interlab/internal/domain/entities"
)

// INominationRepository abstracts DynamoDB persistence for Sangue Verde nominations.
type INominationRepository interface {
	Create(ctx context.Context, n entities.Nomination) (entities.Nomination, error)
	GetByID(ctx context.Context, id string) (entities.Nomination, error)
	List(ctx context.Context) ([]entities.Nomination, error)
	// IncrementVotes returns the new vote count, or 0 when the nomination is missing.
	IncrementVotes(ctx context.Context, id string) (int, error)
}
