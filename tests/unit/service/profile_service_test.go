package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billforge/internal/domain"
	"billforge/internal/service"
	"billforge/mocks"
)

func TestProfileService_Create_Success(t *testing.T) {
	repo := new(mocks.MockProfileRepo)
	svc := service.NewProfileService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	profile, err := svc.Create(context.Background(), service.CreateProfileInput{
		Name:    "Wood Works",
		Company: domain.Party{Name: "Sri Lakshmi Wood Works", GSTIN: "37ABCDE1234F1Z5", StateCode: "37"},
		Terms:   "Payment within 30 days.",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Wood Works", profile.Name)
	assert.Equal(t, "Sri Lakshmi Wood Works", profile.Company.Name)
	repo.AssertExpectations(t)
}

func TestProfileService_Create_DuplicateName(t *testing.T) {
	repo := new(mocks.MockProfileRepo)
	svc := service.NewProfileService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(domain.ErrDuplicateProfileName)

	profile, err := svc.Create(context.Background(), service.CreateProfileInput{Name: "Wood Works"})

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domain.ErrDuplicateProfileName)
}

func TestProfileService_GetByID_NotFound(t *testing.T) {
	repo := new(mocks.MockProfileRepo)
	svc := service.NewProfileService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	profile, err := svc.GetByID(context.Background(), id)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileService_Update_MergesFields(t *testing.T) {
	repo := new(mocks.MockProfileRepo)
	svc := service.NewProfileService(repo)

	id := uuid.New()
	existing := &domain.Profile{
		ID:      id,
		Name:    "Wood Works",
		Company: domain.Party{Name: "Sri Lakshmi Wood Works"},
		Terms:   "Old terms.",
	}
	repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	newTerms := "New terms."
	updated, err := svc.Update(context.Background(), id, service.UpdateProfileInput{Terms: &newTerms})

	assert.NoError(t, err)
	assert.Equal(t, "Wood Works", updated.Name)
	assert.Equal(t, "New terms.", updated.Terms)
	repo.AssertExpectations(t)
}

func TestProfileService_Delete(t *testing.T) {
	repo := new(mocks.MockProfileRepo)
	svc := service.NewProfileService(repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), id))
	repo.AssertExpectations(t)
}
