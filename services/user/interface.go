package user

import "github.com/Sridhar1233sri/consultancy/models"

// UserService handles account registration and authentication.
type UserService interface {
	// Register creates a new account; the email must be unused.
	Register(req models.UserRegistrationRequest) (*models.UserProfile, error)
	// Login verifies credentials and returns the profile with a signed token.
	Login(req models.UserLoginRequest) (*models.UserProfile, string, error)
	// GetAll returns all accounts (admin projection).
	GetAll() ([]models.User, error)
}
