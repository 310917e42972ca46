package service

import (
	"testing"
	"time"

	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name           string
		accessMinutes  int
		refreshMinutes int
	}{
		{name: "default lifetimes", accessMinutes: 15, refreshMinutes: 10080},
		{name: "short lifetimes", accessMinutes: 1, refreshMinutes: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService("access-secret", "refresh-secret", tt.accessMinutes, tt.refreshMinutes)

			assert.NotNil(t, ts)
			assert.Equal(t, time.Duration(tt.accessMinutes)*time.Minute, ts.AccessTokenExpiry())
			assert.Equal(t, time.Duration(tt.refreshMinutes)*time.Minute, ts.RefreshTokenExpiry())
		})
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	ts := NewTokenService("test-access-secret-123", "test-refresh-secret-456", 15, 10080)

	tests := []struct {
		name   string
		kind   TokenKind
		issue  func(string) (string, error)
		userID string
	}{
		{name: "access token", kind: AccessToken, issue: ts.IssueAccessToken, userID: "user-123"},
		{name: "refresh token", kind: RefreshToken, issue: ts.IssueRefreshToken, userID: "user-456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tt.issue(tt.userID)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			subject, err := ts.Verify(token, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, subject)
		})
	}
}

func TestTokenService_Claims(t *testing.T) {
	ts := NewTokenService("test-access-secret-123", "test-refresh-secret-456", 15, 10080)

	before := time.Now()
	token, err := ts.IssueAccessToken("user-123")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-access-secret-123"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.Subject)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, before.Add(15*time.Minute), claims.ExpiresAt.Time, 2*time.Second)
}

func TestTokenService_Verify_Failures(t *testing.T) {
	ts := NewTokenService("test-access-secret-123", "test-refresh-secret-456", 15, 10080)

	accessToken, err := ts.IssueAccessToken("user-123")
	require.NoError(t, err)

	forged, err := NewTokenService("wrong-secret", "wrong-secret", 15, 10080).IssueAccessToken("user-123")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		kind    TokenKind
		wantErr error
	}{
		{name: "garbage input", token: "not-a-token", kind: AccessToken, wantErr: autherror.ErrTokenMalformed},
		{name: "empty input", token: "", kind: AccessToken, wantErr: autherror.ErrTokenMalformed},
		{name: "forged signature", token: forged, kind: AccessToken, wantErr: autherror.ErrTokenMalformed},
		{name: "access token presented as refresh", token: accessToken, kind: RefreshToken, wantErr: autherror.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := ts.Verify(tt.token, tt.kind)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, subject)
		})
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := NewTokenService("test-access-secret-123", "test-refresh-secret-456", -1, -1)

	token, err := ts.IssueAccessToken("user-123")
	require.NoError(t, err)

	subject, err := ts.Verify(token, AccessToken)
	assert.ErrorIs(t, err, autherror.ErrTokenExpired)
	assert.Empty(t, subject)
}
