package service_test

import (
	"context"
	"errors"
	"testing"

	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/Priyanshu-coder81/Backend-learning/internal/mocks"
	"github.com/Priyanshu-coder81/Backend-learning/internal/subscription/domain"
	"github.com/Priyanshu-coder81/Backend-learning/internal/subscription/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscriptionService(t *testing.T) (*service.SubscriptionService, *mocks.MockSubscriptionRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockSubscriptionRepository(ctrl)
	return service.NewSubscriptionService(repo), repo
}

func TestSubscriptionService_Toggle(t *testing.T) {
	t.Run("subscribes when none exists", func(t *testing.T) {
		s, repo := newSubscriptionService(t)

		repo.EXPECT().Get(gomock.Any(), "user-123", "channel-456").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub *domain.Subscription) error {
				assert.NotEmpty(t, sub.ID)
				assert.Equal(t, "user-123", sub.SubscriberID)
				assert.Equal(t, "channel-456", sub.ChannelID)
				return nil
			})

		out, err := s.Toggle(context.Background(), "user-123", "channel-456")

		require.NoError(t, err)
		assert.True(t, out.Subscribed)
	})

	t.Run("unsubscribes when one exists", func(t *testing.T) {
		s, repo := newSubscriptionService(t)

		existing := &domain.Subscription{ID: "sub-1", SubscriberID: "user-123", ChannelID: "channel-456"}
		repo.EXPECT().Get(gomock.Any(), "user-123", "channel-456").Return(existing, nil)
		repo.EXPECT().Delete(gomock.Any(), "user-123", "channel-456").Return(nil)

		out, err := s.Toggle(context.Background(), "user-123", "channel-456")

		require.NoError(t, err)
		assert.False(t, out.Subscribed)
	})

	t.Run("self-subscription is rejected", func(t *testing.T) {
		s, _ := newSubscriptionService(t)

		out, err := s.Toggle(context.Background(), "user-123", "user-123")

		assert.True(t, autherror.IsValidation(err))
		assert.Nil(t, out)
	})

	t.Run("lost insert race still reports subscribed", func(t *testing.T) {
		s, repo := newSubscriptionService(t)

		repo.EXPECT().Get(gomock.Any(), "user-123", "channel-456").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(autherror.ErrAlreadyExists)

		out, err := s.Toggle(context.Background(), "user-123", "channel-456")

		require.NoError(t, err)
		assert.True(t, out.Subscribed)
	})

	t.Run("repo error surfaces", func(t *testing.T) {
		s, repo := newSubscriptionService(t)

		repo.EXPECT().Get(gomock.Any(), "user-123", "channel-456").Return(nil, errors.New("db error"))

		out, err := s.Toggle(context.Background(), "user-123", "channel-456")

		assert.Error(t, err)
		assert.Nil(t, out)
	})
}

func TestSubscriptionService_ListSubscribers(t *testing.T) {
	s, repo := newSubscriptionService(t)

	users := []*domain.ChannelUser{
		{ID: "user-1", Username: "alice", FullName: "Alice"},
		{ID: "user-2", Username: "bob", FullName: "Bob"},
	}
	repo.EXPECT().ListSubscribers(gomock.Any(), "channel-456").Return(users, nil)

	out, err := s.ListSubscribers(context.Background(), "channel-456")

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "alice", out[0].Username)
	assert.Equal(t, "bob", out[1].Username)
}

func TestSubscriptionService_ListSubscribedChannels(t *testing.T) {
	s, repo := newSubscriptionService(t)

	channels := []*domain.ChannelUser{
		{ID: "channel-1", Username: "somechannel"},
	}
	repo.EXPECT().ListSubscribedChannels(gomock.Any(), "user-123").Return(channels, nil)

	out, err := s.ListSubscribedChannels(context.Background(), "user-123")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "somechannel", out[0].Username)
}

func TestSubscriptionService_ListSubscribers_Empty(t *testing.T) {
	s, repo := newSubscriptionService(t)

	repo.EXPECT().ListSubscribers(gomock.Any(), "channel-789").Return(nil, nil)

	out, err := s.ListSubscribers(context.Background(), "channel-789")

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
