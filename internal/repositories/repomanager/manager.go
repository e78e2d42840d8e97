package repomanager

import (
	"context"
	"database/sql"

	"github.com/azaliev/showcase/internal/dbx"
	"github.com/azaliev/showcase/internal/repositories/gallery"
	"github.com/azaliev/showcase/internal/repositories/identity"
	"github.com/azaliev/showcase/internal/repositories/notices"
)

// RepositoryManager vends the per-table repositories and owns schema migration.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Identity(db dbx.DBTX) identity.Repository
	Gallery(db dbx.DBTX) gallery.Repository
	Notices(db dbx.DBTX) notices.Repository
}
