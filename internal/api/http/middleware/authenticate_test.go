package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/dtroode/gophfeed-server/internal/api/http/context"
	"github.com/dtroode/gophfeed-server/internal/mocks"
	"github.com/dtroode/gophfeed-server/internal/model"
	"github.com/dtroode/gophfeed-server/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	user := model.User{ID: uuid.New()}

	tests := []struct {
		name       string
		header     string
		mockSetup  func(*mocks.Authenticator)
		wantStatus int
	}{
		{
			name:   "active token",
			header: "Bearer good",
			mockSetup: func(a *mocks.Authenticator) {
				a.On("Authenticate", mock.Anything, "good").Return(user, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			header:     "",
			mockSetup:  func(*mocks.Authenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			mockSetup:  func(*mocks.Authenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer",
			header:     "Bearer   ",
			mockSetup:  func(*mocks.Authenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "revoked token",
			header: "Bearer old",
			mockSetup: func(a *mocks.Authenticator) {
				a.On("Authenticate", mock.Anything, "old").Return(model.User{}, model.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auth := mocks.NewAuthenticator(t)
			tt.mockSetup(auth)
			cm := httpctx.NewManager()

			var gotUser model.User
			var gotToken string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, gotToken, _ = cm.GetSessionFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			NewAuthenticate(auth, cm, testutil.MakeNoopLogger()).Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, user.ID, gotUser.ID)
				assert.Equal(t, "good", gotToken)
			}
		})
	}
}
