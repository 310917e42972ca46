package dto

import (
	"time"

	"github.com/Priyanshu-coder81/Backend-learning/internal/auth/domain"
)

type UserOutput struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	AvatarURL     string    `json:"avatar"`
	CoverImageURL string    `json:"coverImage"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewUserOutput(u *domain.User) *UserOutput {
	if u == nil {
		return nil
	}
	return &UserOutput{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FullName:      u.FullName,
		AvatarURL:     u.AvatarURL,
		CoverImageURL: u.CoverImageURL,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

type ChannelProfileOutput struct {
	UserOutput
	SubscriberCount   int `json:"subscriberCount"`
	SubscribedToCount int `json:"subscribedToCount"`
}
