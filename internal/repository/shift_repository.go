package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pctowa/pctowa-backend/internal/model"
)

var (
	ErrShiftFull        = errors.New("shift has no remaining seats")
	ErrAlreadyAssigned  = errors.New("student is already assigned to this shift")
	ErrSeatsBelowTaken  = errors.New("seats cannot drop below the number already taken")
	ErrShiftNotFound    = errors.New("shift does not exist")
	ErrStudentNotFound  = errors.New("student does not exist")
	ErrNotAssigned      = errors.New("student is not assigned to this shift")
	ErrInvalidReference = errors.New("referenced company, address or tutor does not exist")
)

const shiftColumns = `id, start_date, end_date, start_day, end_day, start_time, end_time,
	seats, seats_taken, hours, company_id, address_id, tutor_id, created_at, updated_at`

// ShiftRepository handles internship shift data access, including the
// subject/sector tags and student assignments.
type ShiftRepository struct {
	pool *pgxpool.Pool
}

// NewShiftRepository creates a new ShiftRepository.
func NewShiftRepository(pool *pgxpool.Pool) *ShiftRepository {
	return &ShiftRepository{pool: pool}
}

func scanShift(row interface{ Scan(...interface{}) error }, sh *model.Shift) error {
	return row.Scan(
		&sh.ID, &sh.StartDate, &sh.EndDate, &sh.StartDay, &sh.EndDay, &sh.StartTime, &sh.EndTime,
		&sh.Seats, &sh.SeatsTaken, &sh.Hours, &sh.CompanyID, &sh.AddressID, &sh.TutorID,
		&sh.CreatedAt, &sh.UpdatedAt,
	)
}

// GetByID retrieves a shift by ID, including its subject and sector tags.
func (r *ShiftRepository) GetByID(ctx context.Context, id int) (*model.Shift, error) {
	sh := &model.Shift{}
	row := r.pool.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = $1`, id)
	if err := scanShift(row, sh); err != nil {
		return nil, err
	}
	if err := r.loadTags(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

// ListPaginated retrieves shifts with pagination and optional filters.
func (r *ShiftRepository) ListPaginated(ctx context.Context, f *model.ShiftFilter, limit, offset int) ([]model.Shift, int, error) {
	where := ` WHERE 1=1`
	var args []interface{}
	argIdx := 1

	next := func() string {
		s := strconv.Itoa(argIdx)
		argIdx++
		return s
	}

	if f != nil {
		if f.CompanyID != 0 {
			where += ` AND company_id = $` + next()
			args = append(args, f.CompanyID)
		}
		if f.Year != 0 {
			where += ` AND EXTRACT(YEAR FROM start_date) = $` + next()
			args = append(args, f.Year)
		}
		if f.Month != 0 {
			where += ` AND EXTRACT(MONTH FROM start_date) = $` + next()
			args = append(args, f.Month)
		}
		if f.Subject != "" {
			where += ` AND EXISTS (SELECT 1 FROM shift_subjects su WHERE su.shift_id = shifts.id AND su.subject_name = $` + next() + `)`
			args = append(args, f.Subject)
		}
		if f.Sector != "" {
			where += ` AND EXISTS (SELECT 1 FROM shift_sectors ss WHERE ss.shift_id = shifts.id AND ss.sector_name = $` + next() + `)`
			args = append(args, f.Sector)
		}
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM shifts`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + shiftColumns + ` FROM shifts` + where +
		` ORDER BY start_date DESC, id LIMIT $` + next() + ` OFFSET $` + next()
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var shifts []model.Shift
	for rows.Next() {
		var sh model.Shift
		if err := scanShift(rows, &sh); err != nil {
			return nil, 0, err
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range shifts {
		if err := r.loadTags(ctx, &shifts[i]); err != nil {
			return nil, 0, err
		}
	}
	return shifts, total, nil
}

// ListByCompany retrieves all shifts hosted by a company.
func (r *ShiftRepository) ListByCompany(ctx context.Context, companyID int) ([]model.Shift, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+shiftColumns+` FROM shifts WHERE company_id = $1 ORDER BY start_date DESC, id`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []model.Shift
	for rows.Next() {
		var sh model.Shift
		if err := scanShift(rows, &sh); err != nil {
			return nil, err
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range shifts {
		if err := r.loadTags(ctx, &shifts[i]); err != nil {
			return nil, err
		}
	}
	return shifts, nil
}

// Create inserts a shift and its subject/sector tags in one transaction.
func (r *ShiftRepository) Create(ctx context.Context, sh *model.Shift) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO shifts (start_date, end_date, start_day, end_day, start_time, end_time,
			seats, hours, company_id, address_id, tutor_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, seats_taken, created_at, updated_at`,
		sh.StartDate, sh.EndDate, sh.StartDay, sh.EndDay, sh.StartTime, sh.EndTime,
		sh.Seats, sh.Hours, sh.CompanyID, sh.AddressID, sh.TutorID,
	).Scan(&sh.ID, &sh.SeatsTaken, &sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		return mapShiftError(err)
	}

	if err := insertTags(ctx, tx, sh.ID, sh.Subjects, sh.Sectors); err != nil {
		return mapShiftError(err)
	}

	return tx.Commit(ctx)
}

// Update modifies a shift and replaces its tags in one transaction.
// Seats may not drop below the seats already taken.
func (r *ShiftRepository) Update(ctx context.Context, sh *model.Shift) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var seatsTaken int
	err = tx.QueryRow(ctx,
		`SELECT seats_taken FROM shifts WHERE id = $1 FOR UPDATE`, sh.ID,
	).Scan(&seatsTaken)
	if err != nil {
		return err
	}
	if sh.Seats < seatsTaken {
		return ErrSeatsBelowTaken
	}

	_, err = tx.Exec(ctx,
		`UPDATE shifts SET start_date = $1, end_date = $2, start_day = $3, end_day = $4,
			start_time = $5, end_time = $6, seats = $7, hours = $8, company_id = $9,
			address_id = $10, tutor_id = $11, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $12`,
		sh.StartDate, sh.EndDate, sh.StartDay, sh.EndDay, sh.StartTime, sh.EndTime,
		sh.Seats, sh.Hours, sh.CompanyID, sh.AddressID, sh.TutorID, sh.ID,
	)
	if err != nil {
		return mapShiftError(err)
	}
	sh.SeatsTaken = seatsTaken

	if _, err := tx.Exec(ctx, `DELETE FROM shift_subjects WHERE shift_id = $1`, sh.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM shift_sectors WHERE shift_id = $1`, sh.ID); err != nil {
		return err
	}
	if err := insertTags(ctx, tx, sh.ID, sh.Subjects, sh.Sectors); err != nil {
		return mapShiftError(err)
	}

	return tx.Commit(ctx)
}

// Delete removes a shift by ID. Tags and assignments cascade.
func (r *ShiftRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// AssignStudent binds a student to a shift, taking one seat. The shift
// row is locked so concurrent assignments cannot oversell seats.
func (r *ShiftRepository) AssignStudent(ctx context.Context, shiftID int, studentNumber string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var seats, seatsTaken int
	err = tx.QueryRow(ctx,
		`SELECT seats, seats_taken FROM shifts WHERE id = $1 FOR UPDATE`, shiftID,
	).Scan(&seats, &seatsTaken)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrShiftNotFound
	}
	if err != nil {
		return err
	}
	if seatsTaken >= seats {
		return ErrShiftFull
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO student_shifts (student_number, shift_id) VALUES ($1, $2)`,
		studentNumber, shiftID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return ErrAlreadyAssigned
			case "23503":
				return ErrStudentNotFound
			}
		}
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE shifts SET seats_taken = seats_taken + 1, updated_at = CURRENT_TIMESTAMP WHERE id = $1`,
		shiftID,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// UnassignStudent removes a student from a shift and frees the seat.
func (r *ShiftRepository) UnassignStudent(ctx context.Context, shiftID int, studentNumber string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`DELETE FROM student_shifts WHERE student_number = $1 AND shift_id = $2`,
		studentNumber, shiftID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotAssigned
	}

	_, err = tx.Exec(ctx,
		`UPDATE shifts SET seats_taken = GREATEST(seats_taken - 1, 0), updated_at = CURRENT_TIMESTAMP WHERE id = $1`,
		shiftID,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListShiftsForStudent retrieves the shifts a student is assigned to.
func (r *ShiftRepository) ListShiftsForStudent(ctx context.Context, studentNumber string) ([]model.Shift, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+prefixedShiftColumns("sh")+`
		 FROM shifts sh
		 JOIN student_shifts ss ON ss.shift_id = sh.id
		 WHERE ss.student_number = $1
		 ORDER BY sh.start_date DESC`, studentNumber,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []model.Shift
	for rows.Next() {
		var sh model.Shift
		if err := scanShift(rows, &sh); err != nil {
			return nil, err
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range shifts {
		if err := r.loadTags(ctx, &shifts[i]); err != nil {
			return nil, err
		}
	}
	return shifts, nil
}

func (r *ShiftRepository) loadTags(ctx context.Context, sh *model.Shift) error {
	rows, err := r.pool.Query(ctx,
		`SELECT subject_name FROM shift_subjects WHERE shift_id = $1 ORDER BY subject_name`, sh.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		sh.Subjects = append(sh.Subjects, name)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	secRows, err := r.pool.Query(ctx,
		`SELECT sector_name FROM shift_sectors WHERE shift_id = $1 ORDER BY sector_name`, sh.ID,
	)
	if err != nil {
		return err
	}
	defer secRows.Close()
	for secRows.Next() {
		var name string
		if err := secRows.Scan(&name); err != nil {
			return err
		}
		sh.Sectors = append(sh.Sectors, name)
	}
	return secRows.Err()
}

func insertTags(ctx context.Context, tx pgx.Tx, shiftID int, subjects, sectors []string) error {
	for _, name := range subjects {
		if _, err := tx.Exec(ctx,
			`INSERT INTO shift_subjects (shift_id, subject_name) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			shiftID, name,
		); err != nil {
			return err
		}
	}
	for _, name := range sectors {
		if _, err := tx.Exec(ctx,
			`INSERT INTO shift_sectors (shift_id, sector_name) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			shiftID, name,
		); err != nil {
			return err
		}
	}
	return nil
}

// mapShiftError converts foreign key violations on shift writes into
// a sentinel for a missing referenced row.
func mapShiftError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrInvalidReference
	}
	return err
}

func prefixedShiftColumns(alias string) string {
	return alias + `.id, ` + alias + `.start_date, ` + alias + `.end_date, ` + alias + `.start_day, ` +
		alias + `.end_day, ` + alias + `.start_time, ` + alias + `.end_time, ` + alias + `.seats, ` +
		alias + `.seats_taken, ` + alias + `.hours, ` + alias + `.company_id, ` + alias + `.address_id, ` +
		alias + `.tutor_id, ` + alias + `.created_at, ` + alias + `.updated_at`
}
