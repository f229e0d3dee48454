package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pctowa/pctowa-backend/internal/model"
)

var ErrDuplicateEmail = errors.New("user with this email already exists")

// UserRepository handles account data access.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT email, password_hash, first_name, last_name, role, company_id, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.CompanyID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListPaginated retrieves users with pagination and optional role filter.
func (r *UserRepository) ListPaginated(ctx context.Context, role *model.Role, limit, offset int) ([]model.User, int, error) {
	countQuery := `SELECT COUNT(*) FROM users`
	var countArgs []interface{}
	if role != nil {
		countQuery += ` WHERE role = $1`
		countArgs = append(countArgs, *role)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT email, password_hash, first_name, last_name, role, company_id, created_at, updated_at FROM users`
	var args []interface{}
	if role != nil {
		query += ` WHERE role = $1 ORDER BY last_name, first_name LIMIT $2 OFFSET $3`
		args = append(args, *role, limit, offset)
	} else {
		query += ` ORDER BY last_name, first_name LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.CompanyID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// Create inserts a new user account.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, first_name, last_name, role, company_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role, u.CompanyID,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Update modifies a user's profile (excluding password).
func (r *UserRepository) Update(ctx context.Context, u *model.User) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET first_name = $1, last_name = $2, role = $3, company_id = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE email = $5`,
		u.FirstName, u.LastName, u.Role, u.CompanyID, u.Email,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// UpdatePassword updates a user's password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = CURRENT_TIMESTAMP WHERE email = $2`,
		passwordHash, email,
	)
	return err
}

// BindCompany sets the company a user account belongs to.
func (r *UserRepository) BindCompany(ctx context.Context, email string, companyID *int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET company_id = $1, updated_at = CURRENT_TIMESTAMP WHERE email = $2`,
		companyID, email,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// ListTeachersByCompany retrieves teacher accounts bound to a company.
func (r *UserRepository) ListTeachersByCompany(ctx context.Context, companyID int) ([]model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT email, password_hash, first_name, last_name, role, company_id, created_at, updated_at
		 FROM users WHERE role = $1 AND company_id = $2
		 ORDER BY last_name, first_name`,
		model.RoleTeacher, companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

// ListTeachersByClass retrieves the coordinator account of a class.
func (r *UserRepository) ListTeachersByClass(ctx context.Context, classID int) ([]model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT u.email, u.password_hash, u.first_name, u.last_name, u.role, u.company_id, u.created_at, u.updated_at
		 FROM users u
		 JOIN classes c ON c.coordinator_email = u.email
		 WHERE c.id = $1
		 ORDER BY u.last_name, u.first_name`,
		classID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]model.User, error) {
	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.CompanyID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Delete removes a user by email.
func (r *UserRepository) Delete(ctx context.Context, email string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE email = $1`, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
