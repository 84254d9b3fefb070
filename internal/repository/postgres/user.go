package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"vaultgate/internal/domain"
	"vaultgate/internal/domain/models"
	"vaultgate/internal/domain/repositories"
)

// PostgresUserRepository implements the UserRepository interface
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{pool: config.Pool}
}

const userColumns = `id, name, email, email_verified, master_password_hash, master_password_hint,
		key, private_key, public_key, kdf_type, kdf_iterations, security_stamp, created_at, updated_at`

// Create inserts a new account row.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, email_verified, master_password_hash, master_password_hint,
			key, private_key, public_key, kdf_type, kdf_iterations, security_stamp, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	db := GetExecutor(ctx, r.pool)
	_, err := db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.EmailVerified,
		user.MasterPasswordHash,
		user.MasterPasswordHint,
		user.Key,
		user.PrivateKey,
		user.PublicKey,
		user.KdfType,
		user.KdfIterations,
		user.SecurityStamp,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isPgDuplicateError(err) {
			return &domain.BadRequestError{Message: "Email is already registered"}
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByID retrieves an account by id.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmail retrieves an account by email.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// KdfIterationsByEmail returns the stored KDF iteration count, or nil when
// the account does not exist.
func (r *PostgresUserRepository) KdfIterationsByEmail(ctx context.Context, email string) (*int, error) {
	query := `SELECT kdf_iterations FROM users WHERE email = $1`

	db := GetExecutor(ctx, r.pool)
	var iterations int
	err := db.QueryRow(ctx, query, email).Scan(&iterations)
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kdf iterations: %w", err)
	}

	return &iterations, nil
}

func (r *PostgresUserRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	db := GetExecutor(ctx, r.pool)

	var user models.User
	err := db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.EmailVerified,
		&user.MasterPasswordHash,
		&user.MasterPasswordHint,
		&user.Key,
		&user.PrivateKey,
		&user.PublicKey,
		&user.KdfType,
		&user.KdfIterations,
		&user.SecurityStamp,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: "User not found"}
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}
