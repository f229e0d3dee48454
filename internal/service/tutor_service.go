package service

import (
	"context"

	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/repository"
)

// TutorService handles tutor business logic.
type TutorService struct {
	tutorRepo *repository.TutorRepository
}

// NewTutorService creates a new TutorService.
func NewTutorService(tutorRepo *repository.TutorRepository) *TutorService {
	return &TutorService{tutorRepo: tutorRepo}
}

// GetByID retrieves a tutor by ID.
func (s *TutorService) GetByID(ctx context.Context, id int) (*model.Tutor, error) {
	return s.tutorRepo.GetByID(ctx, id)
}

// List retrieves all tutors.
func (s *TutorService) List(ctx context.Context) ([]model.Tutor, error) {
	return s.tutorRepo.List(ctx)
}

// Create registers a new tutor.
func (s *TutorService) Create(ctx context.Context, t *model.Tutor) error {
	return s.tutorRepo.Create(ctx, t)
}

// Update modifies an existing tutor.
func (s *TutorService) Update(ctx context.Context, t *model.Tutor) error {
	return s.tutorRepo.Update(ctx, t)
}

// Delete removes a tutor.
func (s *TutorService) Delete(ctx context.Context, id int) error {
	return s.tutorRepo.Delete(ctx, id)
}
