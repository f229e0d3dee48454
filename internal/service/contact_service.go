package service

import (
	"context"

	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/repository"
)

// ContactService handles company contact business logic.
type ContactService struct {
	contactRepo *repository.ContactRepository
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo *repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// GetByID retrieves a contact by ID.
func (s *ContactService) GetByID(ctx context.Context, id int) (*model.Contact, error) {
	return s.contactRepo.GetByID(ctx, id)
}

// ListByCompany retrieves all contacts of a company.
func (s *ContactService) ListByCompany(ctx context.Context, companyID int) ([]model.Contact, error) {
	return s.contactRepo.ListByCompany(ctx, companyID)
}

// Create inserts a new contact.
func (s *ContactService) Create(ctx context.Context, ct *model.Contact) error {
	return s.contactRepo.Create(ctx, ct)
}

// Update modifies an existing contact.
func (s *ContactService) Update(ctx context.Context, ct *model.Contact) error {
	return s.contactRepo.Update(ctx, ct)
}

// Delete removes a contact.
func (s *ContactService) Delete(ctx context.Context, id int) error {
	return s.contactRepo.Delete(ctx, id)
}
