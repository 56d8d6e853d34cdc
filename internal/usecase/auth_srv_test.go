package usecase

import (
	"context"
	"testing"
	"time"

	"bioskop-ticket/internal/data/entity"
	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/internal/dto/request"
	"bioskop-ticket/pkg/clock"
	"bioskop-ticket/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthService(r *testRepos) AuthService {
	cfg := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 12}}
	return NewAuthService(r.repo, cfg, clock.NewFixed(testNow), newTestLogger())
}

func TestAuthService_Register(t *testing.T) {
	r := newTestRepos(t)
	svc := newAuthService(r)

	r.user.On("FindByEmail", mock.Anything, "rina@example.com").Return(nil, nil)
	r.user.On("FindByUsername", mock.Anything, "rina").Return(nil, nil)
	r.user.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.IsActive && u.PasswordHash != "rahasia123" && utils.CheckPasswordHash("rahasia123", u.PasswordHash)
	})).Return(nil)
	r.session.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "rina",
		Email:    "rina@example.com",
		Password: "rahasia123",
	})

	require.NoError(t, err)
	assert.Equal(t, "rina", resp.Username)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, testNow.Add(12*time.Hour), resp.ExpiresAt)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	t.Run("email taken", func(t *testing.T) {
		r := newTestRepos(t)
		svc := newAuthService(r)

		r.user.On("FindByEmail", mock.Anything, "rina@example.com").Return(&entity.User{}, nil)

		_, err := svc.Register(context.Background(), &request.RegisterRequest{
			Username: "rina", Email: "rina@example.com", Password: "rahasia123",
		})

		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("lost race on unique index", func(t *testing.T) {
		r := newTestRepos(t)
		svc := newAuthService(r)

		r.user.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, nil)
		r.user.On("FindByUsername", mock.Anything, mock.Anything).Return(nil, nil)
		r.user.On("Create", mock.Anything, mock.Anything).Return(repository.ErrUniqueViolation)

		_, err := svc.Register(context.Background(), &request.RegisterRequest{
			Username: "rina", Email: "rina@example.com", Password: "rahasia123",
		})

		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestAuthService_Register_Validation(t *testing.T) {
	r := newTestRepos(t)
	svc := newAuthService(r)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{Username: "ab", Email: "bukan-email", Password: "123"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "username")
	assert.Contains(t, validationErr.Fields, "email")
	assert.Contains(t, validationErr.Fields, "password")
}

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("rahasia123")
	require.NoError(t, err)

	newUser := func(active bool) *entity.User {
		return &entity.User{
			BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
			Username:     "rina",
			Email:        "rina@example.com",
			PasswordHash: hash,
			IsActive:     active,
		}
	}

	t.Run("by username", func(t *testing.T) {
		r := newTestRepos(t)
		svc := newAuthService(r)
		user := newUser(true)

		r.user.On("FindByEmail", mock.Anything, "rina").Return(nil, nil)
		r.user.On("FindByUsername", mock.Anything, "rina").Return(user, nil)
		r.session.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
			return s.UserID == user.ID && s.Token != uuid.Nil
		})).Return(nil)

		resp, err := svc.Login(context.Background(), &request.LoginRequest{Username: "rina", Password: "rahasia123"})

		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), resp.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		r := newTestRepos(t)
		svc := newAuthService(r)

		r.user.On("FindByEmail", mock.Anything, "rina@example.com").Return(newUser(true), nil)

		_, err := svc.Login(context.Background(), &request.LoginRequest{Username: "rina@example.com", Password: "salah1234"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		r := newTestRepos(t)
		svc := newAuthService(r)

		r.user.On("FindByEmail", mock.Anything, "budi").Return(nil, nil)
		r.user.On("FindByUsername", mock.Anything, "budi").Return(nil, nil)

		_, err := svc.Login(context.Background(), &request.LoginRequest{Username: "budi", Password: "rahasia123"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		r := newTestRepos(t)
		svc := newAuthService(r)

		r.user.On("FindByEmail", mock.Anything, "rina@example.com").Return(newUser(false), nil)

		_, err := svc.Login(context.Background(), &request.LoginRequest{Username: "rina@example.com", Password: "rahasia123"})

		assert.ErrorIs(t, err, ErrAccountInactive)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("revokes session", func(t *testing.T) {
		r := newTestRepos(t)
		svc := newAuthService(r)
		token := uuid.New()

		r.session.On("Revoke", mock.Anything, token).Return(nil)

		assert.NoError(t, svc.Logout(context.Background(), token.String()))
	})

	t.Run("already revoked", func(t *testing.T) {
		r := newTestRepos(t)
		svc := newAuthService(r)
		token := uuid.New()

		r.session.On("Revoke", mock.Anything, token).Return(repository.ErrNoRowsAffected)

		assert.ErrorIs(t, svc.Logout(context.Background(), token.String()), ErrInvalidCredentials)
	})

	t.Run("malformed token", func(t *testing.T) {
		r := newTestRepos(t)
		svc := newAuthService(r)

		assert.ErrorIs(t, svc.Logout(context.Background(), "bukan-token"), ErrInvalidCredentials)
	})
}
