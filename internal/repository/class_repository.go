package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pctowa/pctowa-backend/internal/model"
)

var ErrDuplicateClassCode = errors.New("class with this code already exists for the year")

// ClassRepository handles class data access.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// GetByID retrieves a class by ID.
func (r *ClassRepository) GetByID(ctx context.Context, id int) (*model.Class, error) {
	cl := &model.Class{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, code, year, coordinator_email, created_at, updated_at
		 FROM classes WHERE id = $1`, id,
	).Scan(&cl.ID, &cl.Code, &cl.Year, &cl.CoordinatorEmail, &cl.CreatedAt, &cl.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return cl, nil
}

// List retrieves all classes, optionally filtered by year.
func (r *ClassRepository) List(ctx context.Context, year *int) ([]model.Class, error) {
	query := `SELECT id, code, year, coordinator_email, created_at, updated_at FROM classes`
	var args []interface{}
	if year != nil {
		query += ` WHERE year = $1`
		args = append(args, *year)
	}
	query += ` ORDER BY year DESC, code`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var cl model.Class
		if err := rows.Scan(&cl.ID, &cl.Code, &cl.Year, &cl.CoordinatorEmail, &cl.CreatedAt, &cl.UpdatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, cl)
	}
	return classes, rows.Err()
}

// SearchByCode retrieves classes whose code matches the pattern, case
// insensitively. The pattern is wrapped in wildcards so "4A" finds "4AI".
func (r *ClassRepository) SearchByCode(ctx context.Context, code string) ([]model.Class, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, code, year, coordinator_email, created_at, updated_at
		 FROM classes WHERE code ILIKE '%' || $1 || '%'
		 ORDER BY year DESC, code`, code,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var cl model.Class
		if err := rows.Scan(&cl.ID, &cl.Code, &cl.Year, &cl.CoordinatorEmail, &cl.CreatedAt, &cl.UpdatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, cl)
	}
	return classes, rows.Err()
}

// ListByCoordinator retrieves the classes coordinated by a teacher.
func (r *ClassRepository) ListByCoordinator(ctx context.Context, email string) ([]model.Class, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, code, year, coordinator_email, created_at, updated_at
		 FROM classes WHERE coordinator_email = $1
		 ORDER BY year DESC, code`, email,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var cl model.Class
		if err := rows.Scan(&cl.ID, &cl.Code, &cl.Year, &cl.CoordinatorEmail, &cl.CreatedAt, &cl.UpdatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, cl)
	}
	return classes, rows.Err()
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, cl *model.Class) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO classes (code, year, coordinator_email)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		cl.Code, cl.Year, cl.CoordinatorEmail,
	).Scan(&cl.ID, &cl.CreatedAt, &cl.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateClassCode
		}
		return err
	}
	return nil
}

// Update modifies an existing class.
func (r *ClassRepository) Update(ctx context.Context, cl *model.Class) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE classes SET code = $1, year = $2, coordinator_email = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4`,
		cl.Code, cl.Year, cl.CoordinatorEmail, cl.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateClassCode
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// Delete removes a class by ID. Fails while students are still assigned.
func (r *ClassRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
