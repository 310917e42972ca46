package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/Priyanshu-coder81/Backend-learning/internal/subscription/domain"
	repo "github.com/Priyanshu-coder81/Backend-learning/internal/subscription/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresSubscriptionRepository(mock)
	ctx := context.Background()

	sub := &domain.Subscription{
		ID:           "sub-1",
		SubscriberID: "user-123",
		ChannelID:    "channel-456",
		CreatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO subscriptions").
			WithArgs(sub.ID, sub.SubscriberID, sub.ChannelID, sub.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, r.Create(ctx, sub))
	})

	t.Run("unique violation maps to already exists", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO subscriptions").
			WithArgs(sub.ID, sub.SubscriberID, sub.ChannelID, sub.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := r.Create(ctx, sub)
		assert.ErrorIs(t, err, autherror.ErrAlreadyExists)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO subscriptions").
			WithArgs(sub.ID, sub.SubscriberID, sub.ChannelID, sub.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, sub)
		require.Error(t, err)
		assert.NotErrorIs(t, err, autherror.ErrAlreadyExists)
	})
}

func TestSubscriptionGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresSubscriptionRepository(mock)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, subscriber_id").
			WithArgs("user-123", "channel-456").
			WillReturnRows(pgxmock.NewRows([]string{"id", "subscriber_id", "channel_id", "created_at"}).
				AddRow("sub-1", "user-123", "channel-456", time.Now()))

		sub, err := r.Get(ctx, "user-123", "channel-456")
		require.NoError(t, err)
		require.NotNil(t, sub)
		assert.Equal(t, "sub-1", sub.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, subscriber_id").
			WithArgs("user-123", "channel-456").
			WillReturnError(pgx.ErrNoRows)

		sub, err := r.Get(ctx, "user-123", "channel-456")
		require.NoError(t, err)
		assert.Nil(t, sub)
	})
}
