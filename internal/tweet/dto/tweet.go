package dto

import (
	"time"

	"github.com/Priyanshu-coder81/Backend-learning/internal/tweet/domain"
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateTweetInput struct {
	Content string `json:"content"`
}

func (i CreateTweetInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Content, validation.Required, validation.Length(1, 280)),
	)
}

type UpdateTweetInput struct {
	Content string `json:"content"`
}

func (i UpdateTweetInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Content, validation.Required, validation.Length(1, 280)),
	)
}

type TweetOutput struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Content   string    `json:"content"`
	LikeCount int       `json:"likeCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewTweetOutput(t *domain.Tweet) *TweetOutput {
	if t == nil {
		return nil
	}
	return &TweetOutput{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func NewTweetOutputs(tweets []*domain.Tweet) []*TweetOutput {
	out := make([]*TweetOutput, 0, len(tweets))
	for _, t := range tweets {
		out = append(out, NewTweetOutput(t))
	}
	return out
}

type ToggleLikeOutput struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}
