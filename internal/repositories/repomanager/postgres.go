// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/azaliev/showcase/internal/dbx"
	"github.com/azaliev/showcase/internal/migrations"
	"github.com/azaliev/showcase/internal/repositories/gallery"
	"github.com/azaliev/showcase/internal/repositories/identity"
	"github.com/azaliev/showcase/internal/repositories/notices"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Identity returns an identity.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Identity(db dbx.DBTX) identity.Repository {
	return identity.NewPostgresRepository(db)
}

// Gallery returns a gallery.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Gallery(db dbx.DBTX) gallery.Repository {
	return gallery.NewPostgresRepository(db)
}

// Notices returns a notices.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Notices(db dbx.DBTX) notices.Repository {
	return notices.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
