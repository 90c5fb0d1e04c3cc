package userRepo

import (
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// SetRole updates the role of an existing user. It must never create a
	// new record; an unknown id is reported as not found.
	SetRole(id, role string) error
	// GetAllWithProjection retrieves all users with an optional projection.
	GetAllWithProjection(projection bson.M) ([]models.User, error)
}
