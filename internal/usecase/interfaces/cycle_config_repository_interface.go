package interfaces

import (
	"context"

	"interlab/internal/domain/entities"
)

// ICycleConfigRepository reads program calendars. Writes belong to the
// administration tooling, not to this service.
type ICycleConfigRepository interface {
	GetByID(ctx context.Context, id string) (entities.CycleConfig, error)
}
