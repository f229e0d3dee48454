package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pctowa/pctowa-backend/internal/model"
)

var (
	ErrDuplicateNumber = errors.New("student with this number already exists")
	ErrClassNotFound   = errors.New("referenced class does not exist")
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// GetByNumber retrieves a student by their registration number.
func (r *StudentRepository) GetByNumber(ctx context.Context, number string) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT number, first_name, last_name, municipality, class_id, created_at, updated_at
		 FROM students WHERE number = $1`, number,
	).Scan(&s.Number, &s.FirstName, &s.LastName, &s.Municipality, &s.ClassID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListPaginated retrieves students with pagination and optional class filter.
func (r *StudentRepository) ListPaginated(ctx context.Context, classID *int, limit, offset int) ([]model.Student, int, error) {
	countQuery := `SELECT COUNT(*) FROM students`
	var countArgs []interface{}
	if classID != nil {
		countQuery += ` WHERE class_id = $1`
		countArgs = append(countArgs, *classID)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT number, first_name, last_name, municipality, class_id, created_at, updated_at FROM students`
	var args []interface{}
	argIdx := 1

	if classID != nil {
		query += ` WHERE class_id = $1`
		args = append(args, *classID)
		argIdx++
	}

	query += ` ORDER BY last_name, first_name LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.Number, &s.FirstName, &s.LastName, &s.Municipality, &s.ClassID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

// ListByShift retrieves students assigned to a shift.
func (r *StudentRepository) ListByShift(ctx context.Context, shiftID int) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.number, s.first_name, s.last_name, s.municipality, s.class_id, s.created_at, s.updated_at
		 FROM students s
		 JOIN student_shifts ss ON ss.student_number = s.number
		 WHERE ss.shift_id = $1
		 ORDER BY s.last_name, s.first_name`, shiftID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.Number, &s.FirstName, &s.LastName, &s.Municipality, &s.ClassID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (number, first_name, last_name, municipality, class_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		s.Number, s.FirstName, s.LastName, s.Municipality, s.ClassID,
	).Scan(&s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return ErrDuplicateNumber
			case "23503":
				return ErrClassNotFound
			}
		}
		return err
	}
	return nil
}

// Update modifies a student record.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET first_name = $1, last_name = $2, municipality = $3, class_id = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE number = $5`,
		s.FirstName, s.LastName, s.Municipality, s.ClassID, s.Number,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrClassNotFound
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// Delete removes a student by number.
func (r *StudentRepository) Delete(ctx context.Context, number string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE number = $1`, number)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
