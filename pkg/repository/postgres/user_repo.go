package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/msilviu/taskpro/pkg/auth"
)

const userColumns = `id, name, email, password_hash, theme, avatar_url, confirmation_token, access_token, refresh_token, created_at, updated_at`

// UserRepository implements auth.UserRepository backed by PostgreSQL (pgx).
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, confirmation_token)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Name, user.Email, user.PasswordHash, user.ConfirmationToken)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return auth.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) SetSessionTokens(ctx context.Context, id uuid.UUID, access, refresh string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET access_token = $2, refresh_token = $3, updated_at = now()
		WHERE id = $1
	`, id, access, refresh)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}

func (r *UserRepository) RotateSessionTokens(ctx context.Context, id uuid.UUID, prevRefresh, access, refresh string) error {
	// Conditional on the previous refresh token still being stored; a
	// concurrent rotation or logout makes RowsAffected zero.
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET access_token = $3, refresh_token = $4, updated_at = now()
		WHERE id = $1 AND refresh_token = $2
	`, id, prevRefresh, access, refresh)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrTokenMismatch
	}
	return nil
}

func (r *UserRepository) ClearSessionTokens(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET access_token = NULL, refresh_token = NULL, updated_at = now()
		WHERE id = $1
	`, id)
	return err
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, patch auth.ProfilePatch) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			password_hash = COALESCE($4, password_hash),
			theme = COALESCE($5, theme),
			avatar_url = COALESCE($6, avatar_url),
			updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		id, patch.Name, patch.Email, patch.PasswordHash, patch.Theme, patch.AvatarURL)
	return scanUser(row)
}

func scanUser(row pgx.Row) (auth.User, error) {
	var user auth.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Theme,
		&user.AvatarURL, &user.ConfirmationToken, &user.AccessToken,
		&user.RefreshToken, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // email change collides
			return auth.User{}, auth.ErrEmailTaken
		}
		return auth.User{}, err
	}
	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()
	return user, nil
}
