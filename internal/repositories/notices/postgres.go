package notices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/azaliev/showcase/internal/common"
	"github.com/azaliev/showcase/internal/dbx"
	"github.com/azaliev/showcase/internal/models"
)

// PostgresRepository implements Repository over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Notice, error) {
	query := `
		SELECT id, title, description, pdf_url, storage_key, created_at FROM notices
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select notices: %w", err)
	}
	defer rows.Close()

	result := []models.Notice{}
	for rows.Next() {
		var item models.Notice
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.PDFURL, &item.StorageKey, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, n *models.Notice) (*models.Notice, error) {
	query := `
		INSERT INTO notices (title, description, pdf_url, storage_key)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	created := *n
	err := r.db.QueryRowContext(ctx, query, n.Title, n.Description, n.PDFURL, n.StorageKey).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert notice: %w", err)
	}
	return &created, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (string, error) {
	query := `DELETE FROM notices WHERE id = $1 RETURNING storage_key`
	var key string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", common.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to delete notice: %w", err)
	}
	return key, nil
}
