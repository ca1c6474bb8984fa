package userRepo

import "github.com/Sridhar1233sri/consultancy/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByEmail retrieves a user by its email address, or nil if absent.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Delete removes a user record by its ID.
	Delete(id string) error
}
