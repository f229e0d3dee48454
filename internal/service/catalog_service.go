package service

import (
	"context"

	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/repository"
)

// CatalogService handles the lookup tables: sectors, legal forms and subjects.
type CatalogService struct {
	catalogRepo *repository.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalogRepo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// ListSectors retrieves all sectors.
func (s *CatalogService) ListSectors(ctx context.Context) ([]model.Sector, error) {
	return s.catalogRepo.ListSectors(ctx)
}

// CreateSector adds a sector.
func (s *CatalogService) CreateSector(ctx context.Context, sec *model.Sector) error {
	return s.catalogRepo.CreateSector(ctx, sec)
}

// DeleteSector removes a sector.
func (s *CatalogService) DeleteSector(ctx context.Context, name string) error {
	return s.catalogRepo.DeleteSector(ctx, name)
}

// ListLegalForms retrieves all legal forms.
func (s *CatalogService) ListLegalForms(ctx context.Context) ([]model.LegalForm, error) {
	return s.catalogRepo.ListLegalForms(ctx)
}

// CreateLegalForm adds a legal form.
func (s *CatalogService) CreateLegalForm(ctx context.Context, f *model.LegalForm) error {
	return s.catalogRepo.CreateLegalForm(ctx, f)
}

// DeleteLegalForm removes a legal form.
func (s *CatalogService) DeleteLegalForm(ctx context.Context, name string) error {
	return s.catalogRepo.DeleteLegalForm(ctx, name)
}

// ListSubjects retrieves all subjects.
func (s *CatalogService) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	return s.catalogRepo.ListSubjects(ctx)
}

// CreateSubject adds a subject.
func (s *CatalogService) CreateSubject(ctx context.Context, sub *model.Subject) error {
	return s.catalogRepo.CreateSubject(ctx, sub)
}

// UpdateSubject modifies a subject.
func (s *CatalogService) UpdateSubject(ctx context.Context, sub *model.Subject) error {
	return s.catalogRepo.UpdateSubject(ctx, sub)
}

// DeleteSubject removes a subject.
func (s *CatalogService) DeleteSubject(ctx context.Context, name string) error {
	return s.catalogRepo.DeleteSubject(ctx, name)
}
