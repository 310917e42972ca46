package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/Priyanshu-coder81/Backend-learning/internal/tweet/domain"
	"github.com/Priyanshu-coder81/Backend-learning/internal/tweet/dto"
	"github.com/google/uuid"
)

type TweetService struct {
	repo  domain.TweetRepository
	likes domain.TweetLikeRepository
}

func NewTweetService(repo domain.TweetRepository, likes domain.TweetLikeRepository) *TweetService {
	return &TweetService{repo: repo, likes: likes}
}

func (s *TweetService) Create(ctx context.Context, ownerID string, input dto.CreateTweetInput) (*dto.TweetOutput, error) {
	now := time.Now()
	tweet := &domain.Tweet{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, tweet); err != nil {
		return nil, fmt.Errorf("create tweet: %w", err)
	}

	return dto.NewTweetOutput(tweet), nil
}

func (s *TweetService) ListByUser(ctx context.Context, userID string) ([]*dto.TweetOutput, error) {
	tweets, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tweets: %w", err)
	}

	out := dto.NewTweetOutputs(tweets)
	if len(tweets) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(tweets))
	for _, t := range tweets {
		ids = append(ids, t.ID)
	}
	counts, err := s.likes.CountByTweetIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}
	for _, o := range out {
		o.LikeCount = counts[o.ID]
	}

	return out, nil
}

// Update rewrites a tweet's content. Only the owner may update.
func (s *TweetService) Update(ctx context.Context, tweetID, requesterID string, input dto.UpdateTweetInput) (*dto.TweetOutput, error) {
	tweet, err := s.repo.GetByID(ctx, tweetID)
	if err != nil {
		return nil, fmt.Errorf("lookup tweet: %w", err)
	}
	if tweet == nil {
		return nil, autherror.ErrNotFound
	}
	if tweet.OwnerID != requesterID {
		return nil, autherror.ErrForbidden
	}

	updated, err := s.repo.UpdateContent(ctx, tweetID, input.Content)
	if err != nil {
		return nil, fmt.Errorf("update tweet: %w", err)
	}

	out := dto.NewTweetOutput(updated)
	out.LikeCount, err = s.likes.Count(ctx, tweetID)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	return out, nil
}

// Delete removes a tweet. Only the owner may delete.
func (s *TweetService) Delete(ctx context.Context, tweetID, requesterID string) error {
	tweet, err := s.repo.GetByID(ctx, tweetID)
	if err != nil {
		return fmt.Errorf("lookup tweet: %w", err)
	}
	if tweet == nil {
		return autherror.ErrNotFound
	}
	if tweet.OwnerID != requesterID {
		return autherror.ErrForbidden
	}

	if err := s.repo.Delete(ctx, tweetID); err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}

	return nil
}

// ToggleLike likes the tweet for the user, or removes the like if one
// already exists.
func (s *TweetService) ToggleLike(ctx context.Context, tweetID, userID string) (*dto.ToggleLikeOutput, error) {
	tweet, err := s.repo.GetByID(ctx, tweetID)
	if err != nil {
		return nil, fmt.Errorf("lookup tweet: %w", err)
	}
	if tweet == nil {
		return nil, autherror.ErrNotFound
	}

	existing, err := s.likes.Get(ctx, tweetID, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup like: %w", err)
	}

	liked := existing == nil
	if existing != nil {
		if err := s.likes.Delete(ctx, tweetID, userID); err != nil {
			return nil, fmt.Errorf("delete like: %w", err)
		}
	} else {
		like := &domain.Like{
			ID:        uuid.New().String(),
			TweetID:   tweetID,
			UserID:    userID,
			CreatedAt: time.Now(),
		}
		// A concurrent like can win between the lookup and the insert; the
		// unique constraint reports it and the outcome is the same.
		if err := s.likes.Create(ctx, like); err != nil && !errors.Is(err, autherror.ErrAlreadyExists) {
			return nil, fmt.Errorf("create like: %w", err)
		}
	}

	count, err := s.likes.Count(ctx, tweetID)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	return &dto.ToggleLikeOutput{Liked: liked, LikeCount: count}, nil
}
