package user

import (
	"errors"
	"fmt"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrUnknownEmail is returned when a token is requested for an email
	// the portal has never seen.
	ErrUnknownEmail = errors.New("unknown email")
	// ErrUserNotFound is returned when an operation targets a user id that
	// does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// UserService manages portal users, credentials and roles.
type UserService interface {
	// Register stores a new user. Registration is idempotent by email: a
	// repeat registration returns the existing record untouched.
	Register(user models.User) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// IssueToken issues a bearer token for a known email.
	IssueToken(email string) (string, error)
	// IsAdmin reports whether the given email belongs to an admin.
	IsAdmin(email string) (bool, error)
	// GrantAdmin promotes an existing user to admin. It never creates a
	// user record.
	GrantAdmin(id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register stores a new user, or returns the existing record when the email
// is already registered.
func (s *DefaultUserService) Register(user models.User) (*models.User, error) {
	logger := utils.GetLogger()

	if user.Email == "" {
		return nil, fmt.Errorf("email is required")
	}

	existing, err := s.Repo.GetByEmail(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	user.ID = uuid.New().String()
	user.Role = ""
	if err := s.Repo.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logger.Info("user registered", zap.String("id", user.ID), zap.String("email", user.Email))
	return &user, nil
}

// GetAll retrieves all users.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}

// IssueToken issues a bearer token carrying the subject email, valid for
// utils.TokenTTL. Unknown emails are refused.
func (s *DefaultUserService) IssueToken(email string) (string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return "", ErrUnknownEmail
	}
	return utils.GenerateToken(u.ID, u.Email)
}

// IsAdmin reports whether the given email belongs to an admin. An unknown
// email is simply not an admin.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	return u.IsAdmin(), nil
}

// GrantAdmin promotes an existing user to admin.
func (s *DefaultUserService) GrantAdmin(id string) error {
	logger := utils.GetLogger()

	if err := s.Repo.SetRole(id, models.RoleAdmin); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to grant admin role: %w", err)
	}

	logger.Info("admin role granted", zap.String("id", id))
	return nil
}
