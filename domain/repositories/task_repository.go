package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskdesk/domain/models"
)

// TaskQuery describes one bounded, deterministic fetch over a single
// owner's tasks. Filters compose with AND; Search matches title OR
// description as a case-insensitive substring. SortBy and SortOrder are
// already validated and normalized when a query reaches the store.
type TaskQuery struct {
	OwnerID   uuid.UUID
	Status    *string
	Search    string
	SortBy    string // createdAt, updatedAt, title, status
	SortOrder string // asc, desc
	Offset    int
	Limit     int
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	// GetByOwner fetches a task only when it exists AND belongs to ownerID.
	// A task owned by someone else is indistinguishable from a missing one.
	GetByOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Task, error)
	// Search runs the query and also counts all matching rows independent
	// of the Offset/Limit slice.
	Search(ctx context.Context, query TaskQuery) ([]*models.Task, int64, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, task *models.Task) error
}
