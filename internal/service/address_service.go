package service

import (
	"context"

	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/repository"
)

// AddressService handles company address business logic.
type AddressService struct {
	addressRepo *repository.AddressRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(addressRepo *repository.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// GetByID retrieves an address by ID.
func (s *AddressService) GetByID(ctx context.Context, id int) (*model.Address, error) {
	return s.addressRepo.GetByID(ctx, id)
}

// ListByCompany retrieves all addresses of a company.
func (s *AddressService) ListByCompany(ctx context.Context, companyID int) ([]model.Address, error) {
	return s.addressRepo.ListByCompany(ctx, companyID)
}

// Create inserts a new address.
func (s *AddressService) Create(ctx context.Context, a *model.Address) error {
	return s.addressRepo.Create(ctx, a)
}

// Update modifies an existing address.
func (s *AddressService) Update(ctx context.Context, a *model.Address) error {
	return s.addressRepo.Update(ctx, a)
}

// Delete removes an address.
func (s *AddressService) Delete(ctx context.Context, id int) error {
	return s.addressRepo.Delete(ctx, id)
}
