package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pctowa/pctowa-backend/internal/model"
)

var ErrDuplicateName = errors.New("an entry with this name already exists")

// CatalogRepository handles the name-keyed lookup tables: sectors,
// legal forms and subjects.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// ListSectors retrieves all sectors.
func (r *CatalogRepository) ListSectors(ctx context.Context) ([]model.Sector, error) {
	rows, err := r.pool.Query(ctx, `SELECT name FROM sectors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sectors []model.Sector
	for rows.Next() {
		var s model.Sector
		if err := rows.Scan(&s.Name); err != nil {
			return nil, err
		}
		sectors = append(sectors, s)
	}
	return sectors, rows.Err()
}

// CreateSector inserts a new sector.
func (r *CatalogRepository) CreateSector(ctx context.Context, s *model.Sector) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO sectors (name) VALUES ($1)`, s.Name)
	return mapCatalogError(err)
}

// DeleteSector removes a sector by name.
func (r *CatalogRepository) DeleteSector(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sectors WHERE name = $1`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// ListLegalForms retrieves all legal forms.
func (r *CatalogRepository) ListLegalForms(ctx context.Context) ([]model.LegalForm, error) {
	rows, err := r.pool.Query(ctx, `SELECT name FROM legal_forms ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var forms []model.LegalForm
	for rows.Next() {
		var f model.LegalForm
		if err := rows.Scan(&f.Name); err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	return forms, rows.Err()
}

// CreateLegalForm inserts a new legal form.
func (r *CatalogRepository) CreateLegalForm(ctx context.Context, f *model.LegalForm) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO legal_forms (name) VALUES ($1)`, f.Name)
	return mapCatalogError(err)
}

// DeleteLegalForm removes a legal form by name.
func (r *CatalogRepository) DeleteLegalForm(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM legal_forms WHERE name = $1`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// ListSubjects retrieves all subjects.
func (r *CatalogRepository) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, description, hex_color FROM subjects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []model.Subject
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.Name, &s.Description, &s.HexColor); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// CreateSubject inserts a new subject.
func (r *CatalogRepository) CreateSubject(ctx context.Context, s *model.Subject) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO subjects (name, description, hex_color) VALUES ($1, $2, $3)`,
		s.Name, s.Description, s.HexColor,
	)
	return mapCatalogError(err)
}

// UpdateSubject modifies a subject's description and color.
func (r *CatalogRepository) UpdateSubject(ctx context.Context, s *model.Subject) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE subjects SET description = $1, hex_color = $2 WHERE name = $3`,
		s.Description, s.HexColor, s.Name,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// DeleteSubject removes a subject by name.
func (r *CatalogRepository) DeleteSubject(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subjects WHERE name = $1`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func mapCatalogError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateName
	}
	return err
}
