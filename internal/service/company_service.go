package service

import (
	"context"
	"time"

	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/repository"
)

// CompanyService handles company business logic.
type CompanyService struct {
	companyRepo *repository.CompanyRepository
	addressRepo *repository.AddressRepository
	contactRepo *repository.ContactRepository
	shiftRepo   *repository.ShiftRepository
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(
	companyRepo *repository.CompanyRepository,
	addressRepo *repository.AddressRepository,
	contactRepo *repository.ContactRepository,
	shiftRepo *repository.ShiftRepository,
) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		addressRepo: addressRepo,
		contactRepo: contactRepo,
		shiftRepo:   shiftRepo,
	}
}

// GetByID retrieves a company by ID.
func (s *CompanyService) GetByID(ctx context.Context, id int) (*model.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

// GetDetail retrieves a company with its addresses, contacts and shifts.
func (s *CompanyService) GetDetail(ctx context.Context, id int) (*model.CompanyDetail, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	addresses, err := s.addressRepo.ListByCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	contacts, err := s.contactRepo.ListByCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	shifts, err := s.shiftRepo.ListByCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.CompanyDetail{
		Company:   *company,
		Addresses: addresses,
		Contacts:  contacts,
		Shifts:    shifts,
	}, nil
}

// ListPaginated retrieves companies with pagination and filters.
func (s *CompanyService) ListPaginated(ctx context.Context, f *model.CompanyFilter, limit, offset int) ([]model.Company, int, error) {
	return s.companyRepo.ListPaginated(ctx, f, limit, offset)
}

// Create inserts a new company.
func (s *CompanyService) Create(ctx context.Context, co *model.Company) error {
	return s.companyRepo.Create(ctx, co)
}

// Update modifies an existing company.
func (s *CompanyService) Update(ctx context.Context, co *model.Company) error {
	return s.companyRepo.Update(ctx, co)
}

// Delete removes a company.
func (s *CompanyService) Delete(ctx context.Context, id int) error {
	return s.companyRepo.Delete(ctx, id)
}

// ListExpiringAgreements returns companies whose agreement lapses within
// the given window.
func (s *CompanyService) ListExpiringAgreements(ctx context.Context, within time.Duration) ([]model.Company, error) {
	return s.companyRepo.ListExpiringAgreements(ctx, within)
}
