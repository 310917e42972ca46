package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/Priyanshu-coder81/Backend-learning/internal/mocks"
	"github.com/Priyanshu-coder81/Backend-learning/internal/tweet/domain"
	"github.com/Priyanshu-coder81/Backend-learning/internal/tweet/dto"
	"github.com/Priyanshu-coder81/Backend-learning/internal/tweet/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTweetService(t *testing.T) (*service.TweetService, *mocks.MockTweetRepository, *mocks.MockTweetLikeRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockTweetRepository(ctrl)
	likes := mocks.NewMockTweetLikeRepository(ctrl)
	return service.NewTweetService(repo, likes), repo, likes
}

func TestTweetService_Create(t *testing.T) {
	s, repo, _ := newTweetService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tw *domain.Tweet) error {
			assert.NotEmpty(t, tw.ID)
			assert.Equal(t, "user-123", tw.OwnerID)
			assert.Equal(t, "hello world", tw.Content)
			assert.False(t, tw.CreatedAt.IsZero())
			return nil
		})

	out, err := s.Create(context.Background(), "user-123", dto.CreateTweetInput{Content: "hello world"})

	require.NoError(t, err)
	assert.Equal(t, "hello world", out.Content)
	assert.Equal(t, "user-123", out.OwnerID)
	assert.Zero(t, out.LikeCount)
}

func TestTweetService_ListByUser(t *testing.T) {
	s, repo, likes := newTweetService(t)

	tweets := []*domain.Tweet{
		{ID: "tweet-1", OwnerID: "user-123", Content: "first"},
		{ID: "tweet-2", OwnerID: "user-123", Content: "second"},
	}
	repo.EXPECT().ListByOwner(gomock.Any(), "user-123").Return(tweets, nil)
	likes.EXPECT().CountByTweetIDs(gomock.Any(), []string{"tweet-1", "tweet-2"}).
		Return(map[string]int{"tweet-1": 3}, nil)

	out, err := s.ListByUser(context.Background(), "user-123")

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "first", out[0].Content)
	assert.Equal(t, 3, out[0].LikeCount)
	assert.Equal(t, "second", out[1].Content)
	assert.Zero(t, out[1].LikeCount)
}

func TestTweetService_ListByUser_Empty(t *testing.T) {
	s, repo, _ := newTweetService(t)

	// No like lookup when there is nothing to count.
	repo.EXPECT().ListByOwner(gomock.Any(), "user-456").Return(nil, nil)

	out, err := s.ListByUser(context.Background(), "user-456")

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestTweetService_Update(t *testing.T) {
	t.Run("owner can update", func(t *testing.T) {
		s, repo, likes := newTweetService(t)

		existing := &domain.Tweet{ID: "tweet-1", OwnerID: "user-123", Content: "old"}
		updated := &domain.Tweet{ID: "tweet-1", OwnerID: "user-123", Content: "new", UpdatedAt: time.Now()}

		repo.EXPECT().GetByID(gomock.Any(), "tweet-1").Return(existing, nil)
		repo.EXPECT().UpdateContent(gomock.Any(), "tweet-1", "new").Return(updated, nil)
		likes.EXPECT().Count(gomock.Any(), "tweet-1").Return(2, nil)

		out, err := s.Update(context.Background(), "tweet-1", "user-123", dto.UpdateTweetInput{Content: "new"})

		require.NoError(t, err)
		assert.Equal(t, "new", out.Content)
		assert.Equal(t, 2, out.LikeCount)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		s, repo, _ := newTweetService(t)

		existing := &domain.Tweet{ID: "tweet-1", OwnerID: "user-123", Content: "old"}
		repo.EXPECT().GetByID(gomock.Any(), "tweet-1").Return(existing, nil)

		out, err := s.Update(context.Background(), "tweet-1", "someone-else", dto.UpdateTweetInput{Content: "new"})

		assert.ErrorIs(t, err, autherror.ErrForbidden)
		assert.Nil(t, out)
	})

	t.Run("missing tweet", func(t *testing.T) {
		s, repo, _ := newTweetService(t)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)

		out, err := s.Update(context.Background(), "ghost", "user-123", dto.UpdateTweetInput{Content: "new"})

		assert.ErrorIs(t, err, autherror.ErrNotFound)
		assert.Nil(t, out)
	})
}

func TestTweetService_Delete(t *testing.T) {
	t.Run("owner can delete", func(t *testing.T) {
		s, repo, _ := newTweetService(t)

		existing := &domain.Tweet{ID: "tweet-1", OwnerID: "user-123"}
		repo.EXPECT().GetByID(gomock.Any(), "tweet-1").Return(existing, nil)
		repo.EXPECT().Delete(gomock.Any(), "tweet-1").Return(nil)

		require.NoError(t, s.Delete(context.Background(), "tweet-1", "user-123"))
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		s, repo, _ := newTweetService(t)

		existing := &domain.Tweet{ID: "tweet-1", OwnerID: "user-123"}
		repo.EXPECT().GetByID(gomock.Any(), "tweet-1").Return(existing, nil)

		err := s.Delete(context.Background(), "tweet-1", "someone-else")
		assert.ErrorIs(t, err, autherror.ErrForbidden)
	})

	t.Run("repo error surfaces", func(t *testing.T) {
		s, repo, _ := newTweetService(t)

		repo.EXPECT().GetByID(gomock.Any(), "tweet-1").Return(nil, errors.New("db error"))

		err := s.Delete(context.Background(), "tweet-1", "user-123")
		require.Error(t, err)
		assert.NotErrorIs(t, err, autherror.ErrNotFound)
	})
}

func TestTweetService_ToggleLike(t *testing.T) {
	tweet := &domain.Tweet{ID: "tweet-1", OwnerID: "user-123", Content: "hello"}

	t.Run("likes when no like exists", func(t *testing.T) {
		s, repo, likes := newTweetService(t)

		repo.EXPECT().GetByID(gomock.Any(), "tweet-1").Return(tweet, nil)
		likes.EXPECT().Get(gomock.Any(), "tweet-1", "user-456").Return(nil, nil)
		likes.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, like *domain.Like) error {
				assert.NotEmpty(t, like.ID)
				assert.Equal(t, "tweet-1", like.TweetID)
				assert.Equal(t, "user-456", like.UserID)
				return nil
			})
		likes.EXPECT().Count(gomock.Any(), "tweet-1").Return(1, nil)

		out, err := s.ToggleLike(context.Background(), "tweet-1", "user-456")

		require.NoError(t, err)
		assert.True(t, out.Liked)
		assert.Equal(t, 1, out.LikeCount)
	})

	t.Run("unlikes when a like exists", func(t *testing.T) {
		s, repo, likes := newTweetService(t)

		existing := &domain.Like{ID: "like-1", TweetID: "tweet-1", UserID: "user-456"}
		repo.EXPECT().GetByID(gomock.Any(), "tweet-1").Return(tweet, nil)
		likes.EXPECT().Get(gomock.Any(), "tweet-1", "user-456").Return(existing, nil)
		likes.EXPECT().Delete(gomock.Any(), "tweet-1", "user-456").Return(nil)
		likes.EXPECT().Count(gomock.Any(), "tweet-1").Return(0, nil)

		out, err := s.ToggleLike(context.Background(), "tweet-1", "user-456")

		require.NoError(t, err)
		assert.False(t, out.Liked)
		assert.Zero(t, out.LikeCount)
	})

	t.Run("lost insert race still reports liked", func(t *testing.T) {
		s, repo, likes := newTweetService(t)

		repo.EXPECT().GetByID(gomock.Any(), "tweet-1").Return(tweet, nil)
		likes.EXPECT().Get(gomock.Any(), "tweet-1", "user-456").Return(nil, nil)
		likes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(autherror.ErrAlreadyExists)
		likes.EXPECT().Count(gomock.Any(), "tweet-1").Return(1, nil)

		out, err := s.ToggleLike(context.Background(), "tweet-1", "user-456")

		require.NoError(t, err)
		assert.True(t, out.Liked)
	})

	t.Run("missing tweet", func(t *testing.T) {
		s, repo, _ := newTweetService(t)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)

		out, err := s.ToggleLike(context.Background(), "ghost", "user-456")

		assert.ErrorIs(t, err, autherror.ErrNotFound)
		assert.Nil(t, out)
	})
}
