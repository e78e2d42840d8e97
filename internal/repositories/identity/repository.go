package identity

import (
	"context"

	"github.com/azaliev/showcase/internal/models"
)

// Repository reads and writes the singleton identity row.
type Repository interface {
	// Get returns the identity row, or (nil, nil) when none exists yet.
	// Zero rows is a valid state, not an error.
	Get(ctx context.Context) (*models.Identity, error)

	// Upsert creates the row if absent, otherwise updates it, as one atomic
	// statement keyed on the fixed singleton column.
	Upsert(ctx context.Context, ident *models.Identity) error
}
