package repository

import (
	"context"
	"errors"
	"fmt"

	"bioskop-ticket/internal/data/entity"
	"bioskop-ticket/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := conn(ctx, ur.db).Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create user %s: %w", user.Email, ErrUniqueViolation)
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return ur.findOne(ctx, "id", id)
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return ur.findOne(ctx, "email", email)
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return ur.findOne(ctx, "username", username)
}

// column selalu literal dari method di atas, bukan input user
func (ur *userRepository) findOne(ctx context.Context, column string, value any) (*entity.User, error) {
	query := `
		SELECT id, username, email, password, is_active, created_at, updated_at
		FROM users
		WHERE ` + column + ` = $1
	`

	var user entity.User
	err := conn(ctx, ur.db).QueryRow(ctx, query, value).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user",
			zap.Error(err),
			zap.String("by", column),
		)
		return nil, fmt.Errorf("find user by %s: %w", column, err)
	}

	return &user, nil
}
