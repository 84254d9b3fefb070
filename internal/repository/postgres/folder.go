package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"vaultgate/internal/domain"
	"vaultgate/internal/domain/models"
	"vaultgate/internal/domain/repositories"
)

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool *pgxpool.Pool
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{pool: config.Pool}
}

// Create inserts a new folder row.
func (r *PostgresFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	query := `
		INSERT INTO folders (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	db := GetExecutor(ctx, r.pool)
	_, err := db.Exec(ctx, query,
		folder.ID,
		folder.UserID,
		folder.Name,
		folder.CreatedAt,
		folder.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create folder: %w", err)
	}

	return nil
}

// Update renames a folder scoped by (id, userID).
func (r *PostgresFolderRepository) Update(ctx context.Context, folder *models.Folder) error {
	query := `
		UPDATE folders
		SET name = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4
	`

	db := GetExecutor(ctx, r.pool)
	result, err := db.Exec(ctx, query,
		folder.Name,
		folder.UpdatedAt,
		folder.ID,
		folder.UserID,
	)
	if err != nil {
		return fmt.Errorf("update folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: "Folder not found"}
	}

	return nil
}

// Delete removes a folder scoped by (id, userID). Items referencing the
// folder keep their folderId; there is no cascade by design.
func (r *PostgresFolderRepository) Delete(ctx context.Context, id, userID string) error {
	query := `
		DELETE FROM folders
		WHERE id = $1 AND user_id = $2
	`

	db := GetExecutor(ctx, r.pool)
	result, err := db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: "Folder not found"}
	}

	return nil
}

// ListByUser returns all of a user's folders in creation order.
func (r *PostgresFolderRepository) ListByUser(ctx context.Context, userID string) ([]*models.Folder, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM folders
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	db := GetExecutor(ctx, r.pool)
	rows, err := db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []*models.Folder
	for rows.Next() {
		var folder models.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.UserID,
			&folder.Name,
			&folder.CreatedAt,
			&folder.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, &folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}

// InsertIgnoreOp builds a batched insert that ignores already-present ids.
func (r *PostgresFolderRepository) InsertIgnoreOp(folder *models.Folder) repositories.BatchOp {
	return repositories.BatchOp{
		SQL: `
			INSERT INTO folders (id, user_id, name, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING
		`,
		Args: []interface{}{
			folder.ID,
			folder.UserID,
			folder.Name,
			folder.CreatedAt,
			folder.UpdatedAt,
		},
	}
}
