package gallery

import (
	"context"

	"github.com/azaliev/showcase/internal/models"
)

// Repository stores gallery image records. Rows are created once and deleted
// by id, never updated.
type Repository interface {
	// List returns all images ordered by creation time, newest first.
	List(ctx context.Context) ([]models.GalleryImage, error)

	// Insert stores a new image record and returns it with the
	// server-assigned id and timestamp.
	Insert(ctx context.Context, img *models.GalleryImage) (*models.GalleryImage, error)

	// Delete removes the row and returns its storage key so the caller can
	// clean up the stored object. Returns common.ErrNotFound for unknown ids.
	Delete(ctx context.Context, id string) (storageKey string, err error)
}
