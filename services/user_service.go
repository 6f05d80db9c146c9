package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/blogem/ipgate/models"
	"github.com/blogem/ipgate/repositories"
)

// UserService interface defines account and authentication logic
type UserService interface {
	// Authenticate verifies credentials; a non-empty role must also match
	Authenticate(ctx context.Context, username, password string, role models.Role) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, form *models.UserForm) (*models.User, error)
	Update(ctx context.Context, id int64, form *models.UserUpdateForm) (*models.User, error)
	Delete(ctx context.Context, actorID, id int64) error
	IsMainAdmin(user *models.User) bool
	EnsureMainAdmin(ctx context.Context, password string) (*models.User, bool, error)
}

type userService struct {
	repo       repositories.UserRepository
	mainAdmin  string
	maxAdmins  int
	bcryptCost int
}

// NewUserService creates a new user service. mainAdmin is the username of
// the account allowed to manage other users.
func NewUserService(repo repositories.UserRepository, mainAdmin string, maxAdmins int) UserService {
	return &userService{
		repo:       repo,
		mainAdmin:  mainAdmin,
		maxAdmins:  maxAdmins,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (s *userService) Authenticate(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if role != "" && user.Role != role {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// Create validates the form, enforces the admin cap and stores the user
func (s *userService) Create(ctx context.Context, form *models.UserForm) (*models.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	if form.Role == models.RoleAdmin {
		admins, err := s.repo.CountByRole(ctx, models.RoleAdmin)
		if err != nil {
			return nil, err
		}
		if admins >= s.maxAdmins {
			return nil, fmt.Errorf("maximum %d admin users allowed: %w", s.maxAdmins, ErrAdminLimit)
		}
	}

	hash, err := s.hash(form.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     form.Username,
		PasswordHash: hash,
		Role:         form.Role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) Update(ctx context.Context, id int64, form *models.UserUpdateForm) (*models.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if form.Username != nil {
		// The main administrator is identified by the configured username
		if s.IsMainAdmin(user) && *form.Username != user.Username {
			return nil, models.ValidationErrors{{Field: "username", Message: "The main administrator cannot be renamed"}}
		}
		user.Username = *form.Username
	}
	if form.Password != nil {
		hash, err := s.hash(*form.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user; the acting account cannot delete itself
func (s *userService) Delete(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return models.ValidationErrors{{Field: "id", Message: "You cannot delete your own account"}}
	}
	return s.repo.Delete(ctx, id)
}

func (s *userService) IsMainAdmin(user *models.User) bool {
	return user.IsAdmin() && user.Username == s.mainAdmin
}

// EnsureMainAdmin creates the main administrator when it does not exist yet
func (s *userService) EnsureMainAdmin(ctx context.Context, password string) (*models.User, bool, error) {
	existing, err := s.repo.GetByUsername(ctx, s.mainAdmin)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, false, err
	}

	hash, err := s.hash(password)
	if err != nil {
		return nil, false, err
	}

	user := &models.User{Username: s.mainAdmin, PasswordHash: hash, Role: models.RoleAdmin}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("failed to seed main admin: %w", err)
	}

	return user, true, nil
}

func (s *userService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
