package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/Priyanshu-coder81/Backend-learning/internal/subscription/domain"
	"github.com/Priyanshu-coder81/Backend-learning/internal/subscription/dto"
	"github.com/google/uuid"
)

type SubscriptionService struct {
	repo domain.SubscriptionRepository
}

func NewSubscriptionService(repo domain.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{repo: repo}
}

// Toggle subscribes the user to the channel, or unsubscribes if a
// subscription already exists. Subscribing to oneself is rejected.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID string) (*dto.ToggleOutput, error) {
	if subscriberID == channelID {
		return nil, autherror.NewValidation("cannot subscribe to your own channel")
	}

	existing, err := s.repo.Get(ctx, subscriberID, channelID)
	if err != nil {
		return nil, fmt.Errorf("lookup subscription: %w", err)
	}

	if existing != nil {
		if err := s.repo.Delete(ctx, subscriberID, channelID); err != nil {
			return nil, fmt.Errorf("delete subscription: %w", err)
		}
		return &dto.ToggleOutput{Subscribed: false}, nil
	}

	sub := &domain.Subscription{
		ID:           uuid.New().String(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
		CreatedAt:    time.Now(),
	}
	// A concurrent subscribe can win between the lookup and the insert; the
	// unique constraint reports it and the outcome is the same.
	if err := s.repo.Create(ctx, sub); err != nil && !errors.Is(err, autherror.ErrAlreadyExists) {
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	return &dto.ToggleOutput{Subscribed: true}, nil
}

func (s *SubscriptionService) ListSubscribers(ctx context.Context, channelID string) ([]*dto.ChannelUserOutput, error) {
	users, err := s.repo.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return dto.NewChannelUserOutputs(users), nil
}

func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]*dto.ChannelUserOutput, error) {
	users, err := s.repo.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("list subscribed channels: %w", err)
	}
	return dto.NewChannelUserOutputs(users), nil
}
