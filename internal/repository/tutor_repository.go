package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pctowa/pctowa-backend/internal/model"
)

// TutorRepository handles tutor data access.
type TutorRepository struct {
	pool *pgxpool.Pool
}

// NewTutorRepository creates a new TutorRepository.
func NewTutorRepository(pool *pgxpool.Pool) *TutorRepository {
	return &TutorRepository{pool: pool}
}

// GetByID retrieves a tutor by ID.
func (r *TutorRepository) GetByID(ctx context.Context, id int) (*model.Tutor, error) {
	t := &model.Tutor{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, phone, email, created_at, updated_at
		 FROM tutors WHERE id = $1`, id,
	).Scan(&t.ID, &t.FirstName, &t.LastName, &t.Phone, &t.Email, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// List retrieves all tutors.
func (r *TutorRepository) List(ctx context.Context) ([]model.Tutor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name, phone, email, created_at, updated_at
		 FROM tutors ORDER BY last_name, first_name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tutors []model.Tutor
	for rows.Next() {
		var t model.Tutor
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Phone, &t.Email, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tutors = append(tutors, t)
	}
	return tutors, rows.Err()
}

// Create inserts a new tutor.
func (r *TutorRepository) Create(ctx context.Context, t *model.Tutor) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO tutors (first_name, last_name, phone, email)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		t.FirstName, t.LastName, t.Phone, t.Email,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Update modifies an existing tutor.
func (r *TutorRepository) Update(ctx context.Context, t *model.Tutor) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tutors SET first_name = $1, last_name = $2, phone = $3, email = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5`,
		t.FirstName, t.LastName, t.Phone, t.Email, t.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// Delete removes a tutor by ID. Fails while shifts still reference it.
func (r *TutorRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tutors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
