package service

import (
	"context"

	"github.com/google/uuid"

	"billforge/internal/domain"
	"billforge/internal/port"
)

// CreateProfileInput is the DTO for creating a company profile.
type CreateProfileInput struct {
	Name    string       `json:"name" binding:"required"`
	Company domain.Party `json:"company" binding:"required"`
	Terms   string       `json:"terms"`
}

// UpdateProfileInput is the DTO for updating a company profile.
type UpdateProfileInput struct {
	Name    *string       `json:"name"`
	Company *domain.Party `json:"company"`
	Terms   *string       `json:"terms"`
}

// ProfileService defines the company profile management contract.
type ProfileService interface {
	Create(ctx context.Context, input CreateProfileInput) (*domain.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context, offset, limit int) ([]domain.Profile, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*domain.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type profileService struct {
	repo port.ProfileRepository
}

// NewProfileService creates a new ProfileService implementation.
func NewProfileService(repo port.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Create(ctx context.Context, input CreateProfileInput) (*domain.Profile, error) {
	profile := &domain.Profile{
		Name:    input.Name,
		Company: input.Company,
		Terms:   input.Terms,
	}
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *profileService) List(ctx context.Context, offset, limit int) ([]domain.Profile, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *profileService) Update(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*domain.Profile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.Company != nil {
		profile.Company = *input.Company
	}
	if input.Terms != nil {
		profile.Terms = *input.Terms
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
