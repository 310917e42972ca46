package domain

//go:generate mockgen -destination=../../mocks/mock_subscription_repository.go -package=mocks github.com/Priyanshu-coder81/Backend-learning/internal/subscription/domain SubscriptionRepository

import (
	"context"
	"time"
)

type Subscription struct {
	ID           string
	SubscriberID string
	ChannelID    string
	CreatedAt    time.Time
}

// ChannelUser is the public slice of a user row joined through a
// subscription.
type ChannelUser struct {
	ID        string
	Username  string
	FullName  string
	AvatarURL string
}

type SubscriptionRepository interface {
	Get(ctx context.Context, subscriberID, channelID string) (*Subscription, error)
	Create(ctx context.Context, sub *Subscription) error
	Delete(ctx context.Context, subscriberID, channelID string) error
	ListSubscribers(ctx context.Context, channelID string) ([]*ChannelUser, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]*ChannelUser, error)
	CountSubscribers(ctx context.Context, channelID string) (int, error)
	CountSubscribedChannels(ctx context.Context, subscriberID string) (int, error)
}
