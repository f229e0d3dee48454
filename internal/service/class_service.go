package service

import (
	"context"

	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/repository"
)

// ClassService handles class business logic.
type ClassService struct {
	classRepo *repository.ClassRepository
}

// NewClassService creates a new ClassService.
func NewClassService(classRepo *repository.ClassRepository) *ClassService {
	return &ClassService{classRepo: classRepo}
}

// GetByID retrieves a class by ID.
func (s *ClassService) GetByID(ctx context.Context, id int) (*model.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

// List retrieves classes, optionally filtered by year.
func (s *ClassService) List(ctx context.Context, year *int) ([]model.Class, error) {
	return s.classRepo.List(ctx, year)
}

// SearchByCode retrieves classes whose code loosely matches the query.
func (s *ClassService) SearchByCode(ctx context.Context, code string) ([]model.Class, error) {
	return s.classRepo.SearchByCode(ctx, code)
}

// ListByCoordinator retrieves the classes a teacher coordinates.
func (s *ClassService) ListByCoordinator(ctx context.Context, email string) ([]model.Class, error) {
	return s.classRepo.ListByCoordinator(ctx, email)
}

// Create inserts a new class.
func (s *ClassService) Create(ctx context.Context, cl *model.Class) error {
	return s.classRepo.Create(ctx, cl)
}

// Update modifies an existing class.
func (s *ClassService) Update(ctx context.Context, cl *model.Class) error {
	return s.classRepo.Update(ctx, cl)
}

// Delete removes a class. Foreign keys on students block deletion while
// the class still has members.
func (s *ClassService) Delete(ctx context.Context, id int) error {
	return s.classRepo.Delete(ctx, id)
}
