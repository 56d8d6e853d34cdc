package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bioskop-ticket/internal/data/entity"
	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/internal/dto/request"
	"bioskop-ticket/internal/dto/response"
	"bioskop-ticket/pkg/clock"
	"bioskop-ticket/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository // grouping userRepo & sessionRepo
	config *utils.Config
	clock  clock.Clock
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	clk clock.Clock,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		clock:  clk,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	// 2. Cek email & username
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email %w", ErrAlreadyExists)
	}

	existingUser, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("username %w", ErrAlreadyExists)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.clock.Now()
	user := &entity.User{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	// 4. Save user, race pada unique index tetap jadi ErrAlreadyExists
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, fmt.Errorf("username or email %w", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	// 5. Auto login setelah register
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	// Coba cari by email, lalu by username
	user, err := s.repo.User.FindByEmail(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		user, err = s.repo.User.FindByUsername(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("find user: %w", err)
		}
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("identifier", req.Username))
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrAccountInactive
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return ErrInvalidCredentials
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	hours := s.config.Session.ExpiryHours
	if hours <= 0 {
		hours = 24
	}

	now := s.clock.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: now.Add(time.Duration(hours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
