package service

import (
	"context"

	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/repository"
)

// UserService handles account management business logic.
type UserService struct {
	userRepo *repository.UserRepository
	auth     *AuthService
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository, auth *AuthService) *UserService {
	return &UserService{userRepo: userRepo, auth: auth}
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// ListPaginated retrieves users with pagination and optional role filter.
func (s *UserService) ListPaginated(ctx context.Context, role *model.Role, limit, offset int) ([]model.User, int, error) {
	return s.userRepo.ListPaginated(ctx, role, limit, offset)
}

// Create hashes the password and inserts a new account.
func (s *UserService) Create(ctx context.Context, user *model.User, password string) error {
	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.userRepo.Create(ctx, user)
}

// Update modifies a user's profile. A non-empty password replaces the
// stored hash; an empty one keeps it.
func (s *UserService) Update(ctx context.Context, user *model.User, password string) error {
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	if password != "" {
		hash, err := s.auth.HashPassword(password)
		if err != nil {
			return err
		}
		return s.userRepo.UpdatePassword(ctx, user.Email, hash)
	}
	return nil
}

// BindCompany attaches a user account to a company, or detaches it when
// companyID is nil.
func (s *UserService) BindCompany(ctx context.Context, email string, companyID *int) error {
	return s.userRepo.BindCompany(ctx, email, companyID)
}

// ReferenceTeachers retrieves the teacher accounts tied to a company or
// a class, depending on scope.
func (s *UserService) ReferenceTeachers(ctx context.Context, scope string, id int) ([]model.User, error) {
	if scope == "class" {
		return s.userRepo.ListTeachersByClass(ctx, id)
	}
	return s.userRepo.ListTeachersByCompany(ctx, id)
}

// Delete removes an account and drops any active session.
func (s *UserService) Delete(ctx context.Context, email string) error {
	if err := s.userRepo.Delete(ctx, email); err != nil {
		return err
	}
	return s.auth.Logout(ctx, email)
}
