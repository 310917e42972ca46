package postgres

import (
	"context"
	"errors"
	"fmt"

	authrepo "github.com/Priyanshu-coder81/Backend-learning/internal/auth/repository/postgres"
	"github.com/Priyanshu-coder81/Backend-learning/internal/tweet/domain"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	db authrepo.PgxIface
}

func NewPostgresTweetRepository(db authrepo.PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const tweetColumns = `id, owner_id, content, created_at, updated_at`

func scanTweet(row pgx.Row) (*domain.Tweet, error) {
	var t domain.Tweet
	err := row.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan tweet: %w", err)
	}
	return &t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, tweet *domain.Tweet) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO tweets (id, owner_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, tweet.ID, tweet.OwnerID, tweet.Content, tweet.CreatedAt, tweet.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert tweet: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Tweet, error) {
	query := `
		SELECT ` + tweetColumns + `
		FROM tweets
		WHERE id = $1
		LIMIT 1;
	`
	return scanTweet(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Tweet, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+tweetColumns+`
		FROM tweets
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query tweets: %w", err)
	}
	defer rows.Close()

	var tweets []*domain.Tweet
	for rows.Next() {
		var t domain.Tweet
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tweet: %w", err)
		}
		tweets = append(tweets, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tweets: %w", err)
	}

	return tweets, nil
}

func (r *PostgresRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Tweet, error) {
	query := `
		UPDATE tweets SET content = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + tweetColumns + `;
	`
	return scanTweet(r.db.QueryRow(ctx, query, content, id))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}
	return nil
}

var _ domain.TweetRepository = (*PostgresRepository)(nil)
