package usecase

import (
	"context"
	"fmt"

	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	// session masih valid tapi akun sudah dihapus
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
