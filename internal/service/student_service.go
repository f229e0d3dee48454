package service

import (
	"context"

	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/repository"
	"github.com/rs/zerolog/log"
)

// StudentService handles student business logic, including shift
// assignments.
type StudentService struct {
	studentRepo *repository.StudentRepository
	shiftRepo   *repository.ShiftRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository, shiftRepo *repository.ShiftRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo, shiftRepo: shiftRepo}
}

// GetByNumber retrieves a student by registration number.
func (s *StudentService) GetByNumber(ctx context.Context, number string) (*model.Student, error) {
	return s.studentRepo.GetByNumber(ctx, number)
}

// ListPaginated retrieves students with pagination and optional class filter.
func (s *StudentService) ListPaginated(ctx context.Context, classID *int, limit, offset int) ([]model.Student, int, error) {
	return s.studentRepo.ListPaginated(ctx, classID, limit, offset)
}

// ListByShift retrieves the students assigned to a shift.
func (s *StudentService) ListByShift(ctx context.Context, shiftID int) ([]model.Student, error) {
	return s.studentRepo.ListByShift(ctx, shiftID)
}

// ListShifts retrieves the shifts a student is assigned to.
func (s *StudentService) ListShifts(ctx context.Context, number string) ([]model.Shift, error) {
	return s.shiftRepo.ListShiftsForStudent(ctx, number)
}

// Create enrolls a new student.
func (s *StudentService) Create(ctx context.Context, st *model.Student) error {
	return s.studentRepo.Create(ctx, st)
}

// Update modifies a student record.
func (s *StudentService) Update(ctx context.Context, st *model.Student) error {
	return s.studentRepo.Update(ctx, st)
}

// Delete removes a student.
func (s *StudentService) Delete(ctx context.Context, number string) error {
	return s.studentRepo.Delete(ctx, number)
}

// AssignShift binds a student to a shift, taking one of its seats.
// The student must exist; seat accounting happens inside the repository
// transaction.
func (s *StudentService) AssignShift(ctx context.Context, number string, shiftID int) error {
	if _, err := s.studentRepo.GetByNumber(ctx, number); err != nil {
		return err
	}

	if err := s.shiftRepo.AssignStudent(ctx, shiftID, number); err != nil {
		return err
	}

	log.Info().
		Str("student", number).
		Int("shift_id", shiftID).
		Msg("student assigned to shift")
	return nil
}

// UnassignShift removes a student from a shift and frees the seat.
func (s *StudentService) UnassignShift(ctx context.Context, number string, shiftID int) error {
	return s.shiftRepo.UnassignStudent(ctx, shiftID, number)
}
