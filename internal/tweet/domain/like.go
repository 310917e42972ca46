package domain

//go:generate mockgen -destination=../../mocks/mock_tweet_like_repository.go -package=mocks github.com/Priyanshu-coder81/Backend-learning/internal/tweet/domain TweetLikeRepository

import (
	"context"
	"time"
)

type Like struct {
	ID        string
	TweetID   string
	UserID    string
	CreatedAt time.Time
}

type TweetLikeRepository interface {
	// Get returns (nil, nil) when the user has not liked the tweet.
	Get(ctx context.Context, tweetID, userID string) (*Like, error)
	Create(ctx context.Context, like *Like) error
	Delete(ctx context.Context, tweetID, userID string) error
	Count(ctx context.Context, tweetID string) (int, error)
	CountByTweetIDs(ctx context.Context, tweetIDs []string) (map[string]int, error)
}
