package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachhub/internal/auth"
	"coachhub/internal/model"
	"coachhub/internal/repository"
)

var (
	// ErrEmailTaken is returned when signing up with an email already in use.
	ErrEmailTaken = errors.New("email already taken")
	// ErrPasswordPolicy is returned when a password fails the signup policy.
	ErrPasswordPolicy = errors.New("password does not satisfy policy")
	// ErrInvalidCredentials is returned on login when the email is unknown or
	// the password does not match. The two cases are deliberately not
	// distinguishable, so login failures never leak account existence.
	ErrInvalidCredentials = errors.New("unknown user or wrong password")
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrNameUnchanged is returned when a profile rename is a no-op.
	ErrNameUnchanged = errors.New("name unchanged")
	// ErrUpdateFailed is returned when an update touches no rows.
	ErrUpdateFailed = errors.New("update failed")
)

// UserService handles signup, login and profile operations.
type UserService interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateName(ctx context.Context, userID uuid.UUID, name string) error
}

type userService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository, jwtService *auth.JWTService) UserService {
	return &userService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup registers a user with a hashed password and the default role.
// The duplicate check here is best effort; the unique index on users.email is
// what settles a concurrent signup race.
func (s *userService) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	if !auth.ValidPassword(password) {
		return nil, ErrPasswordPolicy
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: digest,
		Role:     model.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a token embedding id and role.
func (s *userService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if !auth.ValidPassword(password) {
		return "", nil, ErrPasswordPolicy
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !auth.VerifyPassword(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// GetProfile returns the user for an authenticated identity.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateName renames the user, rejecting no-op renames.
func (s *userService) UpdateName(ctx context.Context, userID uuid.UUID, name string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if user.Name == name {
		return ErrNameUnchanged
	}

	affected, err := s.userRepo.UpdateName(ctx, userID, name)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if affected == 0 {
		return ErrUpdateFailed
	}
	return nil
}
