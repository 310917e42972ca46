package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Priyanshu-coder81/Backend-learning/internal/auth/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies every route is mounted. A 404 means the route
// does not exist; any other status (400 for a missing body, 401 for a missing
// token) proves the handler was reached.
func TestRegisterRoutes(t *testing.T) {
	f := newHandlerFixture(t)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/users/register"},
		{http.MethodPost, "/api/v1/users/login"},
		{http.MethodPost, "/api/v1/users/refresh-token"},
		{http.MethodGet, "/api/v1/users/c/somechannel"},
		{http.MethodPost, "/api/v1/users/loggedOut"},
		{http.MethodPost, "/api/v1/users/change-password"},
		{http.MethodGet, "/api/v1/users/current-user"},
		{http.MethodPatch, "/api/v1/users/update-account"},
		{http.MethodPatch, "/api/v1/users/avatar"},
		{http.MethodPatch, "/api/v1/users/cover-image"},
	}

	// The channel profile route reaches the repository unauthenticated; it
	// must resolve a real user or the handler itself would answer 404.
	channel := &domain.User{ID: "channel-1", Username: "somechannel"}
	f.repo.EXPECT().GetByUsername(gomock.Any(), "somechannel").Return(channel, nil)
	f.subs.EXPECT().CountSubscribers(gomock.Any(), "channel-1").Return(0, nil)
	f.subs.EXPECT().CountSubscribedChannels(gomock.Any(), "channel-1").Return(0, nil)

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := f.app.Test(req)
			require.NoError(t, err)

			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

// Protected routes reject unauthenticated requests before any handler runs.
func TestProtectedRoutesRequireAuth(t *testing.T) {
	f := newHandlerFixture(t)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/users/loggedOut"},
		{http.MethodPost, "/api/v1/users/change-password"},
		{http.MethodGet, "/api/v1/users/current-user"},
		{http.MethodPatch, "/api/v1/users/update-account"},
		{http.MethodPatch, "/api/v1/users/avatar"},
		{http.MethodPatch, "/api/v1/users/cover-image"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := f.app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
