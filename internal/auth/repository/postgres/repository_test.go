package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Priyanshu-coder81/Backend-learning/internal/auth/domain"
	repo "github.com/Priyanshu-coder81/Backend-learning/internal/auth/repository/postgres"
	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{
	"id", "username", "email", "full_name", "password_hash",
	"coalesce", "avatar_url", "cover_image_url", "created_at", "updated_at",
}

func userRow(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).AddRow(
		u.ID, u.Username, u.Email, u.FullName, u.PasswordHash,
		u.RefreshToken, u.AvatarURL, u.CoverImageURL, u.CreatedAt, u.UpdatedAt,
	)
}

func TestGetByIdentifier(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresUserRepository(mock)
	ctx := context.Background()

	expected := &domain.User{
		ID:        "user-123",
		Username:  "testuser",
		Email:     "test@example.com",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	t.Run("found by username", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("testuser").
			WillReturnRows(userRow(expected))

		user, err := r.GetByIdentifier(ctx, "testuser")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, expected.ID, user.ID)
		assert.Equal(t, expected.Email, user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByIdentifier(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("testuser").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByIdentifier(ctx, "testuser")
		assert.Error(t, err)
	})
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresUserRepository(mock)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		expected := &domain.User{ID: "user-123", Username: "testuser"}
		mock.ExpectQuery("SELECT id, username").
			WithArgs("user-123").
			WillReturnRows(userRow(expected))

		user, err := r.GetByID(ctx, "user-123")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "testuser", user.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByID(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestExistsByUsernameOrEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresUserRepository(mock)
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("testuser", "test@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := r.ExistsByUsernameOrEmail(ctx, "testuser", "test@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("does not exist", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("newuser", "new@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := r.ExistsByUsernameOrEmail(ctx, "newuser", "new@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresUserRepository(mock)
	ctx := context.Background()

	user := &domain.User{
		ID:           "user-123",
		Username:     "testuser",
		Email:        "test@example.com",
		FullName:     "Test User",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Username, user.Email, user.FullName, user.PasswordHash,
				user.AvatarURL, user.CoverImageURL, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, r.Create(ctx, user))
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Username, user.Email, user.FullName, user.PasswordHash,
				user.AvatarURL, user.CoverImageURL, user.CreatedAt, user.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := r.Create(ctx, user)
		assert.ErrorIs(t, err, autherror.ErrUserAlreadyExists)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Username, user.Email, user.FullName, user.PasswordHash,
				user.AvatarURL, user.CoverImageURL, user.CreatedAt, user.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, user)
		require.Error(t, err)
		assert.NotErrorIs(t, err, autherror.ErrUserAlreadyExists)
	})
}

func TestRotateRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresUserRepository(mock)
	ctx := context.Background()

	t.Run("swap wins", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET refresh_token").
			WithArgs("new-token", "user-123", "old-token").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		rotated, err := r.RotateRefreshToken(ctx, "user-123", "old-token", "new-token")
		require.NoError(t, err)
		assert.True(t, rotated)
	})

	t.Run("stored token does not match", func(t *testing.T) {
		// The conditional WHERE matched no row: someone already rotated.
		mock.ExpectExec("UPDATE users SET refresh_token").
			WithArgs("new-token", "user-123", "stale-token").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		rotated, err := r.RotateRefreshToken(ctx, "user-123", "stale-token", "new-token")
		require.NoError(t, err)
		assert.False(t, rotated)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET refresh_token").
			WithArgs("new-token", "user-123", "old-token").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.RotateRefreshToken(ctx, "user-123", "old-token", "new-token")
		assert.Error(t, err)
	})
}

func TestClearRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresUserRepository(mock)

	mock.ExpectExec("UPDATE users SET refresh_token = NULL").
		WithArgs("user-123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, r.ClearRefreshToken(context.Background(), "user-123"))
}

func TestUpdateAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresUserRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		updated := &domain.User{
			ID:       "user-123",
			Username: "testuser",
			Email:    "new@example.com",
			FullName: "New Name",
		}
		mock.ExpectQuery("UPDATE users SET full_name").
			WithArgs("New Name", "new@example.com", "user-123").
			WillReturnRows(userRow(updated))

		user, err := r.UpdateAccount(ctx, "user-123", "New Name", "new@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "New Name", user.FullName)
		assert.Equal(t, "new@example.com", user.Email)
	})

	t.Run("email already taken", func(t *testing.T) {
		mock.ExpectQuery("UPDATE users SET full_name").
			WithArgs("New Name", "taken@example.com", "user-123").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := r.UpdateAccount(ctx, "user-123", "New Name", "taken@example.com")
		assert.ErrorIs(t, err, autherror.ErrUserAlreadyExists)
	})
}

func TestUpdateAvatar(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresUserRepository(mock)

	updated := &domain.User{ID: "user-123", AvatarURL: "https://cdn.example.com/a.png"}
	mock.ExpectQuery("UPDATE users SET avatar_url").
		WithArgs("https://cdn.example.com/a.png", "user-123").
		WillReturnRows(userRow(updated))

	user, err := r.UpdateAvatar(context.Background(), "user-123", "https://cdn.example.com/a.png")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "https://cdn.example.com/a.png", user.AvatarURL)
}
