package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/azaliev/showcase/internal/dbx"
	"github.com/azaliev/showcase/internal/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context) (*models.Identity, error) {
	query := `
		SELECT id, full_name, title, bio, logo_url, email, github_url, linkedin_url
		FROM identity
	`
	result := &models.Identity{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&result.ID, &result.FullName, &result.Title, &result.Bio,
		&result.LogoURL, &result.Email, &result.GithubURL, &result.LinkedinURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select identity: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, ident *models.Identity) error {
	query := `
		INSERT INTO identity (singleton, full_name, title, bio, logo_url, email, github_url, linkedin_url)
		VALUES (true, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (singleton)
		DO UPDATE SET
			full_name = EXCLUDED.full_name,
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			logo_url = EXCLUDED.logo_url,
			email = EXCLUDED.email,
			github_url = EXCLUDED.github_url,
			linkedin_url = EXCLUDED.linkedin_url;
	`
	res, err := r.db.ExecContext(ctx, query,
		ident.FullName, ident.Title, ident.Bio, ident.LogoURL,
		ident.Email, ident.GithubURL, ident.LinkedinURL)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}
