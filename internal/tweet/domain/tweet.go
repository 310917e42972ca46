package domain

//go:generate mockgen -destination=../../mocks/mock_tweet_repository.go -package=mocks github.com/Priyanshu-coder81/Backend-learning/internal/tweet/domain TweetRepository

import (
	"context"
	"time"
)

type Tweet struct {
	ID        string
	OwnerID   string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TweetRepository interface {
	Create(ctx context.Context, tweet *Tweet) error
	GetByID(ctx context.Context, id string) (*Tweet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Tweet, error)
	UpdateContent(ctx context.Context, id, content string) (*Tweet, error)
	Delete(ctx context.Context, id string) error
}
