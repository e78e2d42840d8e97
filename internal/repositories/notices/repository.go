package notices

import (
	"context"

	"github.com/azaliev/showcase/internal/models"
)

// Repository stores notice records. Same lifecycle as gallery images:
// created once, deleted by id, never updated.
type Repository interface {
	// List returns all notices ordered by creation time, newest first.
	List(ctx context.Context) ([]models.Notice, error)

	// Insert stores a new notice and returns it with the server-assigned
	// id and timestamp.
	Insert(ctx context.Context, n *models.Notice) (*models.Notice, error)

	// Delete removes the row and returns its storage key.
	// Returns common.ErrNotFound for unknown ids.
	Delete(ctx context.Context, id string) (storageKey string, err error)
}
