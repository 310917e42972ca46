package postgres

import (
	"context"
	"errors"
	"fmt"

	authrepo "github.com/Priyanshu-coder81/Backend-learning/internal/auth/repository/postgres"
	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/Priyanshu-coder81/Backend-learning/internal/tweet/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresLikeRepository struct {
	db authrepo.PgxIface
}

func NewPostgresLikeRepository(db authrepo.PgxIface) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) Get(ctx context.Context, tweetID, userID string) (*domain.Like, error) {
	var like domain.Like
	err := r.db.QueryRow(ctx, `
		SELECT id, tweet_id, user_id, created_at
		FROM tweet_likes
		WHERE tweet_id = $1 AND user_id = $2
		LIMIT 1;
	`, tweetID, userID).Scan(&like.ID, &like.TweetID, &like.UserID, &like.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan like: %w", err)
	}
	return &like, nil
}

func (r *PostgresLikeRepository) Create(ctx context.Context, like *domain.Like) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO tweet_likes (id, tweet_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, like.ID, like.TweetID, like.UserID, like.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return autherror.ErrAlreadyExists
		}
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (r *PostgresLikeRepository) Delete(ctx context.Context, tweetID, userID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM tweet_likes WHERE tweet_id = $1 AND user_id = $2
	`, tweetID, userID)
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}

func (r *PostgresLikeRepository) Count(ctx context.Context, tweetID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM tweet_likes WHERE tweet_id = $1
	`, tweetID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}

// CountByTweetIDs returns like counts keyed by tweet ID; tweets with no likes
// are absent from the map.
func (r *PostgresLikeRepository) CountByTweetIDs(ctx context.Context, tweetIDs []string) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT tweet_id, COUNT(*)
		FROM tweet_likes
		WHERE tweet_id = ANY($1)
		GROUP BY tweet_id
	`, tweetIDs)
	if err != nil {
		return nil, fmt.Errorf("query like counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int, len(tweetIDs))
	for rows.Next() {
		var tweetID string
		var count int
		if err := rows.Scan(&tweetID, &count); err != nil {
			return nil, fmt.Errorf("scan like count: %w", err)
		}
		counts[tweetID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate like counts: %w", err)
	}

	return counts, nil
}

var _ domain.TweetLikeRepository = (*PostgresLikeRepository)(nil)
