package dto

import (
	"github.com/Priyanshu-coder81/Backend-learning/internal/subscription/domain"
)

type ToggleOutput struct {
	Subscribed bool `json:"subscribed"`
}

type ChannelUserOutput struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatar"`
}

func NewChannelUserOutputs(users []*domain.ChannelUser) []*ChannelUserOutput {
	out := make([]*ChannelUserOutput, 0, len(users))
	for _, u := range users {
		out = append(out, &ChannelUserOutput{
			ID:        u.ID,
			Username:  u.Username,
			FullName:  u.FullName,
			AvatarURL: u.AvatarURL,
		})
	}
	return out
}
