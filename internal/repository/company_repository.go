package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pctowa/pctowa-backend/internal/model"
)

var ErrDuplicateVAT = errors.New("company with this VAT number already exists")

const companyColumns = `id, business_name, name, website, logo_url, ateco_code, vat_number,
	phone, fax, email, pec, legal_form, agreement_date, agreement_expiry, category, sector,
	created_at, updated_at`

// CompanyRepository handles company data access.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

func scanCompany(row interface{ Scan(...interface{}) error }, co *model.Company) error {
	return row.Scan(
		&co.ID, &co.BusinessName, &co.Name, &co.Website, &co.LogoURL, &co.AtecoCode, &co.VATNumber,
		&co.Phone, &co.Fax, &co.Email, &co.PEC, &co.LegalForm, &co.AgreementDate, &co.AgreementExpiry,
		&co.Category, &co.Sector, &co.CreatedAt, &co.UpdatedAt,
	)
}

// GetByID retrieves a company by ID.
func (r *CompanyRepository) GetByID(ctx context.Context, id int) (*model.Company, error) {
	co := &model.Company{}
	row := r.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	if err := scanCompany(row, co); err != nil {
		return nil, err
	}
	return co, nil
}

// ListPaginated retrieves companies with pagination and optional filters.
// Year and Month match companies that host at least one shift in that
// period; Municipality matches any of the company's addresses.
func (r *CompanyRepository) ListPaginated(ctx context.Context, f *model.CompanyFilter, limit, offset int) ([]model.Company, int, error) {
	where := ` WHERE 1=1`
	var args []interface{}
	argIdx := 1

	next := func() string {
		s := strconv.Itoa(argIdx)
		argIdx++
		return s
	}

	if f != nil {
		if f.Year != 0 {
			where += ` AND EXISTS (SELECT 1 FROM shifts sh WHERE sh.company_id = companies.id
				AND EXTRACT(YEAR FROM sh.start_date) = $` + next() + `)`
			args = append(args, f.Year)
		}
		if f.Month != 0 {
			where += ` AND EXISTS (SELECT 1 FROM shifts sh WHERE sh.company_id = companies.id
				AND EXTRACT(MONTH FROM sh.start_date) = $` + next() + `)`
			args = append(args, f.Month)
		}
		if f.Municipality != "" {
			where += ` AND EXISTS (SELECT 1 FROM addresses a WHERE a.company_id = companies.id
				AND a.municipality ILIKE $` + next() + `)`
			args = append(args, f.Municipality)
		}
		if f.Sector != "" {
			where += ` AND (sector = $` + next() + ` OR EXISTS (
				SELECT 1 FROM shifts sh JOIN shift_sectors ss ON ss.shift_id = sh.id
				WHERE sh.company_id = companies.id AND ss.sector_name = $` + next() + `))`
			args = append(args, f.Sector, f.Sector)
		}
		if f.Subject != "" {
			where += ` AND EXISTS (SELECT 1 FROM shifts sh JOIN shift_subjects su ON su.shift_id = sh.id
				WHERE sh.company_id = companies.id AND su.subject_name = $` + next() + `)`
			args = append(args, f.Subject)
		}
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM companies`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + companyColumns + ` FROM companies` + where +
		` ORDER BY business_name LIMIT $` + next() + ` OFFSET $` + next()
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var companies []model.Company
	for rows.Next() {
		var co model.Company
		if err := scanCompany(rows, &co); err != nil {
			return nil, 0, err
		}
		companies = append(companies, co)
	}
	return companies, total, rows.Err()
}

// Create inserts a new company.
func (r *CompanyRepository) Create(ctx context.Context, co *model.Company) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO companies (business_name, name, website, logo_url, ateco_code, vat_number,
			phone, fax, email, pec, legal_form, agreement_date, agreement_expiry, category, sector)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING id, created_at, updated_at`,
		co.BusinessName, co.Name, co.Website, co.LogoURL, co.AtecoCode, co.VATNumber,
		co.Phone, co.Fax, co.Email, co.PEC, co.LegalForm, co.AgreementDate, co.AgreementExpiry,
		co.Category, co.Sector,
	).Scan(&co.ID, &co.CreatedAt, &co.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateVAT
		}
		return err
	}
	return nil
}

// Update modifies an existing company.
func (r *CompanyRepository) Update(ctx context.Context, co *model.Company) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE companies SET business_name = $1, name = $2, website = $3, logo_url = $4,
			ateco_code = $5, vat_number = $6, phone = $7, fax = $8, email = $9, pec = $10,
			legal_form = $11, agreement_date = $12, agreement_expiry = $13, category = $14,
			sector = $15, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $16`,
		co.BusinessName, co.Name, co.Website, co.LogoURL, co.AtecoCode, co.VATNumber,
		co.Phone, co.Fax, co.Email, co.PEC, co.LegalForm, co.AgreementDate, co.AgreementExpiry,
		co.Category, co.Sector, co.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateVAT
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// Delete removes a company by ID. Addresses and contacts cascade;
// shifts block the delete through their foreign key.
func (r *CompanyRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// ListExpiringAgreements returns companies whose agreement expires within
// the given window and has not already lapsed.
func (r *CompanyRepository) ListExpiringAgreements(ctx context.Context, within time.Duration) ([]model.Company, error) {
	deadline := time.Now().Add(within)

	rows, err := r.pool.Query(ctx,
		`SELECT `+companyColumns+` FROM companies
		 WHERE agreement_expiry IS NOT NULL
		   AND agreement_expiry >= CURRENT_DATE
		   AND agreement_expiry <= $1
		 ORDER BY agreement_expiry`,
		deadline,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []model.Company
	for rows.Next() {
		var co model.Company
		if err := scanCompany(rows, &co); err != nil {
			return nil, err
		}
		companies = append(companies, co)
	}
	return companies, rows.Err()
}
