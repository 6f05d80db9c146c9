package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/ipgate/models"
	"github.com/blogem/ipgate/repositories"
)

// WhitelistService interface defines IP whitelist business logic
type WhitelistService interface {
	GetAll(ctx context.Context) ([]models.WhitelistEntry, error)
	GetByID(ctx context.Context, id int64) (*models.WhitelistEntry, error)
	Create(ctx context.Context, form *models.WhitelistForm) (*models.WhitelistEntry, error)
	Update(ctx context.Context, id int64, update *models.WhitelistUpdate) (*models.WhitelistEntry, error)
	Delete(ctx context.Context, id int64) error
	IsWhitelisted(ctx context.Context, ip string) (bool, error)
	// EnsureEntry whitelists ip unless an entry (active or not) exists and
	// reports whether a new entry was created
	EnsureEntry(ctx context.Context, ip, description string, createdBy *int64) (*models.WhitelistEntry, bool, error)
}

type whitelistService struct {
	repo repositories.WhitelistRepository
}

// NewWhitelistService creates a new whitelist service
func NewWhitelistService(repo repositories.WhitelistRepository) WhitelistService {
	return &whitelistService{repo: repo}
}

func (s *whitelistService) GetAll(ctx context.Context) ([]models.WhitelistEntry, error) {
	return s.repo.GetAll(ctx)
}

func (s *whitelistService) GetByID(ctx context.Context, id int64) (*models.WhitelistEntry, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the form and stores a new entry under the normalized
// address the gate looks up; the store rejects duplicates with
// repositories.ErrDuplicateKey
func (s *whitelistService) Create(ctx context.Context, form *models.WhitelistForm) (*models.WhitelistEntry, error) {
	form.IPAddress = NormalizeIP(strings.TrimSpace(form.IPAddress))

	entry, err := models.NewWhitelistEntry(form)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *whitelistService) Update(ctx context.Context, id int64, update *models.WhitelistUpdate) (*models.WhitelistEntry, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, update)
}

func (s *whitelistService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *whitelistService) IsWhitelisted(ctx context.Context, ip string) (bool, error) {
	return s.repo.IsWhitelisted(ctx, NormalizeIP(ip))
}

func (s *whitelistService) EnsureEntry(ctx context.Context, ip, description string, createdBy *int64) (*models.WhitelistEntry, bool, error) {
	ip = NormalizeIP(ip)

	existing, err := s.repo.GetByIP(ctx, ip)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, false, err
	}

	entry, err := s.Create(ctx, &models.WhitelistForm{
		IPAddress:   ip,
		Description: description,
		CreatedBy:   createdBy,
	})
	if errors.Is(err, repositories.ErrDuplicateKey) {
		// Lost a race with a concurrent request for the same IP
		existing, err := s.repo.GetByIP(ctx, ip)
		if err != nil {
			return nil, false, fmt.Errorf("failed to load concurrently created entry: %w", err)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return entry, true, nil
}
