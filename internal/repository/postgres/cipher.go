package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"vaultgate/internal/domain"
	"vaultgate/internal/domain/models"
	"vaultgate/internal/domain/repositories"
)

// PostgresCipherRepository implements the CipherRepository interface
type PostgresCipherRepository struct {
	pool *pgxpool.Pool
}

// NewCipherRepository creates a new cipher repository
func NewCipherRepository(config *RepositoryConfig) repositories.CipherRepository {
	return &PostgresCipherRepository{pool: config.Pool}
}

const cipherColumns = `id, user_id, organization_id, type, data, favorite, folder_id, deleted_at, created_at, updated_at`

// Create inserts a new cipher row. Favorite is stored as 0/1.
func (r *PostgresCipherRepository) Create(ctx context.Context, cipher *models.Cipher) error {
	query := `
		INSERT INTO ciphers (id, user_id, organization_id, type, data, favorite, folder_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	db := GetExecutor(ctx, r.pool)
	_, err := db.Exec(ctx, query,
		cipher.ID,
		cipher.UserID,
		cipher.OrganizationID,
		int(cipher.Type),
		cipher.Data,
		boolToInt(cipher.Favorite),
		cipher.FolderID,
		cipher.CreatedAt,
		cipher.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create cipher: %w", err)
	}

	return nil
}

// GetByID retrieves a cipher scoped by (id, userID).
func (r *PostgresCipherRepository) GetByID(ctx context.Context, id, userID string) (*models.Cipher, error) {
	query := `
		SELECT ` + cipherColumns + `
		FROM ciphers
		WHERE id = $1 AND user_id = $2
	`

	db := GetExecutor(ctx, r.pool)
	cipher, err := scanCipher(db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: "Cipher not found"}
		}
		return nil, fmt.Errorf("get cipher: %w", err)
	}

	return cipher, nil
}

// Update rewrites the mutable columns of a cipher, scoped by (id, userID).
func (r *PostgresCipherRepository) Update(ctx context.Context, cipher *models.Cipher) error {
	query := `
		UPDATE ciphers
		SET organization_id = $1, type = $2, data = $3, favorite = $4, folder_id = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
	`

	db := GetExecutor(ctx, r.pool)
	result, err := db.Exec(ctx, query,
		cipher.OrganizationID,
		int(cipher.Type),
		cipher.Data,
		boolToInt(cipher.Favorite),
		cipher.FolderID,
		cipher.UpdatedAt,
		cipher.ID,
		cipher.UserID,
	)
	if err != nil {
		return fmt.Errorf("update cipher: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: "Cipher not found"}
	}

	return nil
}

// Delete removes a cipher scoped by (id, userID).
func (r *PostgresCipherRepository) Delete(ctx context.Context, id, userID string) error {
	query := `
		DELETE FROM ciphers
		WHERE id = $1 AND user_id = $2
	`

	db := GetExecutor(ctx, r.pool)
	result, err := db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete cipher: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: "Cipher not found"}
	}

	return nil
}

// ListByUser returns all of a user's ciphers in creation order.
func (r *PostgresCipherRepository) ListByUser(ctx context.Context, userID string) ([]*models.Cipher, error) {
	query := `
		SELECT ` + cipherColumns + `
		FROM ciphers
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	db := GetExecutor(ctx, r.pool)
	rows, err := db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list ciphers: %w", err)
	}
	defer rows.Close()

	var ciphers []*models.Cipher
	for rows.Next() {
		cipher, err := scanCipher(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cipher: %w", err)
		}
		ciphers = append(ciphers, cipher)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ciphers: %w", err)
	}

	return ciphers, nil
}

// InsertIgnoreOp builds a batched insert that ignores already-present ids,
// so re-running an import plan is a no-op rather than an error.
func (r *PostgresCipherRepository) InsertIgnoreOp(cipher *models.Cipher) repositories.BatchOp {
	return repositories.BatchOp{
		SQL: `
			INSERT INTO ciphers (id, user_id, organization_id, type, data, favorite, folder_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING
		`,
		Args: []interface{}{
			cipher.ID,
			cipher.UserID,
			cipher.OrganizationID,
			int(cipher.Type),
			cipher.Data,
			boolToInt(cipher.Favorite),
			cipher.FolderID,
			cipher.CreatedAt,
			cipher.UpdatedAt,
		},
	}
}

// rowScanner covers pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCipher(row rowScanner) (*models.Cipher, error) {
	var cipher models.Cipher
	var cipherType int
	var favorite int

	err := row.Scan(
		&cipher.ID,
		&cipher.UserID,
		&cipher.OrganizationID,
		&cipherType,
		&cipher.Data,
		&favorite,
		&cipher.FolderID,
		&cipher.DeletedAt,
		&cipher.CreatedAt,
		&cipher.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cipher.Type = models.CipherType(cipherType)
	cipher.Favorite = favorite != 0
	return &cipher, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
