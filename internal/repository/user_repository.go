package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pos-service/internal/domain"
)

// UserRepository is the identity collaborator consumed by the auth
// subsystem and the POS services.
type UserRepository interface {
	CreateUnverified(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	MarkVerified(ctx context.Context, id string) error
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	AssignTable(ctx context.Context, userID string, tableID *string) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, username, email, email_verified, phone_number, password_hash,
        role, birth_date, station, table_id, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.EmailVerified,
		&user.PhoneNumber,
		&user.PasswordHash,
		&user.Role,
		&user.BirthDate,
		&user.Station,
		&user.TableID,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CreateUnverified(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (username, email, email_verified, phone_number, password_hash, role, birth_date, station)
        VALUES ($1, $2, FALSE, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	user.EmailVerified = false
	return r.pool.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PhoneNumber,
		user.PasswordHash,
		user.Role,
		user.BirthDate,
		user.Station,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) MarkVerified(ctx context.Context, id string) error {
	const query = `
        UPDATE users SET email_verified=TRUE, updated_at=NOW()
        WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE role=$1`

	rows, err := r.pool.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) AssignTable(ctx context.Context, userID string, tableID *string) error {
	const query = `
        UPDATE users SET table_id=$1, updated_at=NOW()
        WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, tableID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
