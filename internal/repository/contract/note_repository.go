package contract

import (
	"context"

	"notes-taking-be/internal/entity"
	"notes-taking-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	// Delete hard-deletes the row and reports how many rows were affected,
	// so callers can distinguish a miss from a hit.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
