package user

import (
	"strings"
	"time"

	userRepo "github.com/Sridhar1233sri/consultancy/database/repository/user"
	"github.com/Sridhar1233sri/consultancy/models"
	"github.com/Sridhar1233sri/consultancy/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a new account with a bcrypt-hashed password.
func (s *DefaultUserService) Register(req models.UserRegistrationRequest) (*models.UserProfile, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, &utils.InvalidInputError{Field: "credentials", Reason: "email and password are required"}
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, &utils.StorageUnavailableError{Op: "user lookup", Err: err}
	}
	if existing != nil {
		return nil, &utils.ConflictError{Message: "a user with this email already exists"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usr := &models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         "user",
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, &utils.StorageUnavailableError{Op: "user insert", Err: err}
	}

	utils.GetLogger().Info("user registered", zap.String("email", email))
	return &models.UserProfile{Username: usr.Username, Email: usr.Email}, nil
}

// Login verifies credentials and issues a JWT for the session.
func (s *DefaultUserService) Login(req models.UserLoginRequest) (*models.UserProfile, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", &utils.InvalidInputError{Field: "credentials", Reason: "email and password are required"}
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", &utils.StorageUnavailableError{Op: "user lookup", Err: err}
	}
	if usr == nil {
		return nil, "", &utils.NotFoundError{Entity: "user", ID: email}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", &utils.InvalidInputError{Field: "password", Reason: "incorrect password"}
	}

	token, err := utils.GenerateToken(usr.Email, usr.Role, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	utils.GetLogger().Info("user logged in", zap.String("email", email))
	return &models.UserProfile{Username: usr.Username, Email: usr.Email}, token, nil
}

// GetAll returns all accounts.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}
