package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Priyanshu-coder81/Backend-learning/internal/auth/domain"
	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresUserRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, username, email, full_name, password_hash, COALESCE(refresh_token, ''), avatar_url, cover_image_url, created_at, updated_at`

func (r *PostgresRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.FullName, &user.PasswordHash,
		&user.RefreshToken, &user.AvatarURL, &user.CoverImageURL, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}

func (r *PostgresRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 OR email = $1
		LIMIT 1;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, identifier))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
		LIMIT 1;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *PostgresRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)
	`, username, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user existence: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, username, email, full_name, password_hash, avatar_url, cover_image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, user.ID, user.Username, user.Email, user.FullName, user.PasswordHash,
		user.AvatarURL, user.CoverImageURL, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return autherror.ErrUserAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateRefreshToken(ctx context.Context, userID, token string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET refresh_token = $1, updated_at = now() WHERE id = $2
	`, token, userID)
	if err != nil {
		return fmt.Errorf("update refresh token: %w", err)
	}
	return nil
}

// RotateRefreshToken performs the swap as a single conditional update so two
// racing refresh calls presenting the same token cannot both succeed.
func (r *PostgresRepository) RotateRefreshToken(ctx context.Context, userID, oldToken, newToken string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET refresh_token = $1, updated_at = now()
		WHERE id = $2 AND refresh_token = $3
	`, newToken, userID, oldToken)
	if err != nil {
		return false, fmt.Errorf("rotate refresh token: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PostgresRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET refresh_token = NULL, updated_at = now() WHERE id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("clear refresh token: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2
	`, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateAccount(ctx context.Context, userID, fullName, email string) (*domain.User, error) {
	query := `
		UPDATE users SET full_name = $1, email = $2, updated_at = now()
		WHERE id = $3
		RETURNING ` + userColumns + `;
	`
	user, err := r.scanUser(r.db.QueryRow(ctx, query, fullName, email, userID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, autherror.ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (r *PostgresRepository) UpdateAvatar(ctx context.Context, userID, avatarURL string) (*domain.User, error) {
	query := `
		UPDATE users SET avatar_url = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + userColumns + `;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, avatarURL, userID))
}

func (r *PostgresRepository) UpdateCoverImage(ctx context.Context, userID, coverImageURL string) (*domain.User, error) {
	query := `
		UPDATE users SET cover_image_url = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + userColumns + `;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, coverImageURL, userID))
}

var _ domain.UserRepository = (*PostgresRepository)(nil)
