package service

import (
	"context"
	"errors"
	"time"

	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/repository"
)

// Shift validation errors.
var (
	ErrInvalidDayOrder  = errors.New("start day must come before end day")
	ErrInvalidDateOrder = errors.New("start date must come before end date")
	ErrInvalidTimeOrder = errors.New("start time must come before end time")
)

// ShiftService handles shift business logic.
type ShiftService struct {
	shiftRepo   *repository.ShiftRepository
	studentRepo *repository.StudentRepository
}

// NewShiftService creates a new ShiftService.
func NewShiftService(shiftRepo *repository.ShiftRepository, studentRepo *repository.StudentRepository) *ShiftService {
	return &ShiftService{shiftRepo: shiftRepo, studentRepo: studentRepo}
}

// GetByID retrieves a shift by ID.
func (s *ShiftService) GetByID(ctx context.Context, id int) (*model.Shift, error) {
	return s.shiftRepo.GetByID(ctx, id)
}

// GetRoster retrieves a shift together with the students assigned to it.
func (s *ShiftService) GetRoster(ctx context.Context, id int) (*model.ShiftRoster, error) {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	students, err := s.studentRepo.ListByShift(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.ShiftRoster{Shift: *shift, Students: students}, nil
}

// ListByCompany retrieves all shifts hosted by a company.
func (s *ShiftService) ListByCompany(ctx context.Context, companyID int) ([]model.Shift, error) {
	return s.shiftRepo.ListByCompany(ctx, companyID)
}

// ListPaginated retrieves shifts with pagination and filters.
func (s *ShiftService) ListPaginated(ctx context.Context, f *model.ShiftFilter, limit, offset int) ([]model.Shift, int, error) {
	return s.shiftRepo.ListPaginated(ctx, f, limit, offset)
}

// Create validates the schedule and inserts a new shift.
func (s *ShiftService) Create(ctx context.Context, sh *model.Shift) error {
	if err := validateSchedule(sh); err != nil {
		return err
	}
	return s.shiftRepo.Create(ctx, sh)
}

// Update validates the schedule and modifies an existing shift.
func (s *ShiftService) Update(ctx context.Context, sh *model.Shift) error {
	if err := validateSchedule(sh); err != nil {
		return err
	}
	return s.shiftRepo.Update(ctx, sh)
}

// Delete removes a shift.
func (s *ShiftService) Delete(ctx context.Context, id int) error {
	return s.shiftRepo.Delete(ctx, id)
}

// validateSchedule enforces the weekday window and date/time ordering.
// Weekday values themselves are checked at binding time.
func validateSchedule(sh *model.Shift) error {
	if !sh.StartDay.Before(sh.EndDay) {
		return ErrInvalidDayOrder
	}
	if sh.EndDate.Before(sh.StartDate) {
		return ErrInvalidDateOrder
	}
	start, err := time.Parse("15:04", sh.StartTime)
	if err != nil {
		return ErrInvalidTimeOrder
	}
	end, err := time.Parse("15:04", sh.EndTime)
	if err != nil {
		return ErrInvalidTimeOrder
	}
	if !start.Before(end) {
		return ErrInvalidTimeOrder
	}
	return nil
}
