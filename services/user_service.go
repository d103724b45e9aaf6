package services

import (
	"github.com/fairsplit/fairsplit-backend/auth"
	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/repository"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// UserService handles registration, login and the user directory
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new user account with a hashed password
func (s *UserService) Register(name, email, password string) (*models.User, error) {
	if err := utils.ValidateRequired(name, "name"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(email, "email"); err != nil {
		return nil, err
	}

	if existing, _ := s.userRepo.GetUserByEmail(email); existing != nil {
		return nil, utils.NewConflictError("Email already registered")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		if err == auth.ErrWeakPassword {
			return nil, utils.NewValidationError(err.Error())
		}
		return nil, utils.NewInternalError("Failed to hash password")
	}

	user := models.NewUser(name, email, hash)
	if err := s.userRepo.StoreUser(user); err != nil {
		return nil, utils.NewInternalError("Failed to store user")
	}
	return user, nil
}

// Login verifies credentials and returns the user on success
func (s *UserService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, utils.NewUnauthorizedError("Invalid email or password")
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, utils.NewUnauthorizedError("Invalid email or password")
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, utils.NewNotFoundError("User")
	}
	return user, nil
}

// GetFriends returns everyone who shares at least one group with the user
func (s *UserService) GetFriends(userID string) ([]models.User, error) {
	friends, err := s.userRepo.GetFriends(userID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve friends")
	}
	if friends == nil {
		friends = []models.User{}
	}
	return friends, nil
}
