package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/Priyanshu-coder81/Backend-learning/internal/auth/domain UserRepository,SubscriptionCounter

import "context"

type UserRepository interface {
	// GetByIdentifier matches either username or email; returns (nil, nil)
	// when no row exists.
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, user *User) error
	UpdateRefreshToken(ctx context.Context, userID, token string) error
	// RotateRefreshToken swaps the stored refresh token for newToken only if
	// the stored value still equals oldToken. Returns false when the
	// conditional update matched no row.
	RotateRefreshToken(ctx context.Context, userID, oldToken, newToken string) (bool, error)
	ClearRefreshToken(ctx context.Context, userID string) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	UpdateAccount(ctx context.Context, userID, fullName, email string) (*User, error)
	UpdateAvatar(ctx context.Context, userID, avatarURL string) (*User, error)
	UpdateCoverImage(ctx context.Context, userID, coverImageURL string) (*User, error)
}

// SubscriptionCounter exposes the aggregate counts a channel profile needs.
type SubscriptionCounter interface {
	CountSubscribers(ctx context.Context, channelID string) (int, error)
	CountSubscribedChannels(ctx context.Context, subscriberID string) (int, error)
}
