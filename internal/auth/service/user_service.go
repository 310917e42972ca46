package service

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/Priyanshu-coder81/Backend-learning/config"
	"github.com/Priyanshu-coder81/Backend-learning/internal/auth/domain"
	"github.com/Priyanshu-coder81/Backend-learning/internal/auth/dto"
	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/Priyanshu-coder81/Backend-learning/internal/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserService orchestrates the session lifecycle: registration, login,
// refresh-token rotation, logout and password changes.
type UserService struct {
	repo    domain.UserRepository
	tokens  TokenIssuer
	storage storage.Service
	subs    domain.SubscriptionCounter
	cfg     *config.Config
	log     *logrus.Logger
}

func NewUserService(repo domain.UserRepository, tokens TokenIssuer, store storage.Service,
	subs domain.SubscriptionCounter, cfg *config.Config, log *logrus.Logger) *UserService {
	if log == nil {
		log = logrus.New()
	}

	return &UserService{
		repo:    repo,
		tokens:  tokens,
		storage: store,
		subs:    subs,
		cfg:     cfg,
		log:     log,
	}
}

// Register creates a user record after uploading the avatar (required) and
// cover image (optional) from the given local paths.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput, avatarPath, coverImagePath string) (*dto.UserOutput, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, autherror.ErrUserAlreadyExists
	}

	avatarURL, err := s.uploadMedia(ctx, avatarPath, "avatars")
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	coverImageURL := ""
	if coverImagePath != "" {
		coverImageURL, err = s.uploadMedia(ctx, coverImagePath, "covers")
		if err != nil {
			return nil, fmt.Errorf("upload cover image: %w", err)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:            uuid.New().String(),
		Username:      username,
		Email:         email,
		FullName:      strings.TrimSpace(input.FullName),
		PasswordHash:  string(hashedPassword),
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return dto.NewUserOutput(user), nil
}

// Login verifies credentials and issues a fresh token pair. Unknown identity
// and wrong password fail identically so callers cannot enumerate users.
// Persisting the new refresh token invalidates any earlier one: a single
// live session per user.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	identifier := strings.ToLower(strings.TrimSpace(input.Identifier()))

	user, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &dto.LoginOutput{
		User:         dto.NewUserOutput(user.Sanitized()),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh rotates the refresh token. The swap is an atomic conditional
// update, so of two concurrent calls presenting the same token exactly one
// wins; the loser observes ErrTokenReuseDetected.
func (s *UserService) Refresh(ctx context.Context, presented string) (*dto.TokenPair, error) {
	if presented == "" {
		return nil, autherror.ErrUnauthenticated
	}

	userID, err := s.tokens.Verify(presented, RefreshToken)
	if err != nil {
		return nil, autherror.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, autherror.ErrInvalidToken
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	newRefreshToken, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	rotated, err := s.repo.RotateRefreshToken(ctx, user.ID, presented, newRefreshToken)
	if err != nil {
		return nil, fmt.Errorf("rotate refresh token: %w", err)
	}
	if !rotated {
		s.log.Warnf("refresh token reuse detected for user %s", user.ID)
		return nil, autherror.ErrTokenReuseDetected
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout clears the stored refresh token. Idempotent: a second call finds
// nothing to clear and still succeeds.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	if err := s.repo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("clear refresh token: %w", err)
	}
	return nil
}

// ChangePassword replaces the stored hash after verifying the old password.
// Existing tokens stay valid; the session is not revoked.
func (s *UserService) ChangePassword(ctx context.Context, userID string, input dto.ChangePasswordInput) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return autherror.ErrNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)) != nil {
		return autherror.NewValidation("old password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

func (s *UserService) UpdateAccount(ctx context.Context, userID string, input dto.UpdateAccountInput) (*dto.UserOutput, error) {
	user, err := s.repo.UpdateAccount(ctx, userID, strings.TrimSpace(input.FullName), strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrNotFound
	}
	return dto.NewUserOutput(user), nil
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID, avatarPath string) (*dto.UserOutput, error) {
	current, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if current == nil {
		return nil, autherror.ErrNotFound
	}

	avatarURL, err := s.uploadMedia(ctx, avatarPath, "avatars")
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	user, err := s.repo.UpdateAvatar(ctx, userID, avatarURL)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrNotFound
	}

	s.removeMedia(ctx, current.AvatarURL)

	return dto.NewUserOutput(user), nil
}

func (s *UserService) UpdateCoverImage(ctx context.Context, userID, coverImagePath string) (*dto.UserOutput, error) {
	current, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if current == nil {
		return nil, autherror.ErrNotFound
	}

	coverImageURL, err := s.uploadMedia(ctx, coverImagePath, "covers")
	if err != nil {
		return nil, fmt.Errorf("upload cover image: %w", err)
	}

	user, err := s.repo.UpdateCoverImage(ctx, userID, coverImageURL)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrNotFound
	}

	s.removeMedia(ctx, current.CoverImageURL)

	return dto.NewUserOutput(user), nil
}

// GetChannelProfile returns the public channel view for a username along
// with subscriber counts.
func (s *UserService) GetChannelProfile(ctx context.Context, username string) (*dto.ChannelProfileOutput, error) {
	user, err := s.repo.GetByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		return nil, fmt.Errorf("lookup channel: %w", err)
	}
	if user == nil {
		return nil, autherror.ErrNotFound
	}

	subscriberCount, err := s.subs.CountSubscribers(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}
	subscribedToCount, err := s.subs.CountSubscribedChannels(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count subscribed channels: %w", err)
	}

	return &dto.ChannelProfileOutput{
		UserOutput:        *dto.NewUserOutput(user.Sanitized()),
		SubscriberCount:   subscriberCount,
		SubscribedToCount: subscribedToCount,
	}, nil
}

func (s *UserService) uploadMedia(ctx context.Context, localPath, category string) (string, error) {
	key := fmt.Sprintf("%s/%s%s", category, uuid.New().String(), filepath.Ext(localPath))
	if prefix := strings.Trim(s.cfg.Storage.KeyPrefix, "/"); prefix != "" {
		key = prefix + "/" + key
	}
	return s.storage.UploadFile(ctx, localPath, key)
}

// removeMedia deletes the object behind a previously stored URL. Removal is
// best effort; a failure leaves an orphaned object, not a broken record.
func (s *UserService) removeMedia(ctx context.Context, rawURL string) {
	if rawURL == "" {
		return
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return
	}
	key := strings.TrimPrefix(u.Path, "/")
	if err := s.storage.DeleteObject(ctx, key); err != nil {
		s.log.Warnf("delete replaced media %s: %v", key, err)
	}
}
