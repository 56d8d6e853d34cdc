package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bioskop-ticket/internal/data/entity"
	"bioskop-ticket/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*entity.Session)
	return s, args.Error(1)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token uuid.UUID) error {
	return m.Called(ctx, token).Error(0)
}

func protected(repo *mockSessionRepo) http.Handler {
	return AuthSession(repo, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := utils.GetUserIDFromContext(r.Context())
		token, _ := utils.GetTokenFromContext(r.Context())
		w.Header().Set("X-User", userID.String())
		w.Header().Set("X-Token", token)
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAuthSession_ValidToken(t *testing.T) {
	repo := &mockSessionRepo{}
	token := uuid.New()
	userID := uuid.New()
	repo.On("FindValidSession", mock.Anything, token).Return(&entity.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/user/bookings", nil)
	req.Header.Set("Authorization", "bearer "+token.String())
	rec := httptest.NewRecorder()
	protected(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Header().Get("X-User"))
	assert.Equal(t, token.String(), rec.Header().Get("X-Token"))
}

func TestAuthSession_Rejects(t *testing.T) {
	token := uuid.New()
	revokedAt := time.Now().Add(-time.Minute)

	tests := []struct {
		name    string
		header  string
		session *entity.Session
		err     error
		want    int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token.String(), want: http.StatusUnauthorized},
		{name: "not a uuid", header: "Bearer abc", want: http.StatusUnauthorized},
		{name: "unknown session", header: "Bearer " + token.String(), want: http.StatusUnauthorized},
		{
			name:    "expired",
			header:  "Bearer " + token.String(),
			session: &entity.Session{UserID: uuid.New(), ExpiresAt: time.Now().Add(-time.Hour)},
			want:    http.StatusUnauthorized,
		},
		{
			name:    "revoked",
			header:  "Bearer " + token.String(),
			session: &entity.Session{UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour), RevokedAt: &revokedAt},
			want:    http.StatusUnauthorized,
		},
		{name: "store down", header: "Bearer " + token.String(), err: errors.New("timeout"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockSessionRepo{}
			repo.On("FindValidSession", mock.Anything, token).Return(tt.session, tt.err).Maybe()

			req := httptest.NewRequest(http.MethodGet, "/api/user/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected(repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			assert.Empty(t, rec.Header().Get("X-User"))
		})
	}
}
