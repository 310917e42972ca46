package postgres

import (
	"context"
	"errors"
	"fmt"

	authrepo "github.com/Priyanshu-coder81/Backend-learning/internal/auth/repository/postgres"
	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/Priyanshu-coder81/Backend-learning/internal/subscription/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db authrepo.PgxIface
}

func NewPostgresSubscriptionRepository(db authrepo.PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, subscriberID, channelID string) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := r.db.QueryRow(ctx, `
		SELECT id, subscriber_id, channel_id, created_at
		FROM subscriptions
		WHERE subscriber_id = $1 AND channel_id = $2
		LIMIT 1;
	`, subscriberID, channelID).Scan(&sub.ID, &sub.SubscriberID, &sub.ChannelID, &sub.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan subscription: %w", err)
	}
	return &sub, nil
}

func (r *PostgresRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO subscriptions (id, subscriber_id, channel_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, sub.ID, sub.SubscriberID, sub.ChannelID, sub.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return autherror.ErrAlreadyExists
		}
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, subscriberID, channelID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2
	`, subscriberID, channelID)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListSubscribers(ctx context.Context, channelID string) ([]*domain.ChannelUser, error) {
	return r.listUsers(ctx, `
		SELECT u.id, u.username, u.full_name, u.avatar_url
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC
	`, channelID)
}

func (r *PostgresRepository) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]*domain.ChannelUser, error) {
	return r.listUsers(ctx, `
		SELECT u.id, u.username, u.full_name, u.avatar_url
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC
	`, subscriberID)
}

func (r *PostgresRepository) listUsers(ctx context.Context, query, arg string) ([]*domain.ChannelUser, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query subscriptions: %w", err)
	}
	defer rows.Close()

	var users []*domain.ChannelUser
	for rows.Next() {
		var u domain.ChannelUser
		if err := rows.Scan(&u.ID, &u.Username, &u.FullName, &u.AvatarURL); err != nil {
			return nil, fmt.Errorf("scan subscription user: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscription users: %w", err)
	}

	return users, nil
}

func (r *PostgresRepository) CountSubscribers(ctx context.Context, channelID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1
	`, channelID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) CountSubscribedChannels(ctx context.Context, subscriberID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1
	`, subscriberID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count subscribed channels: %w", err)
	}
	return count, nil
}

var _ domain.SubscriptionRepository = (*PostgresRepository)(nil)
