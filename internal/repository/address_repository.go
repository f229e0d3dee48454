package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pctowa/pctowa-backend/internal/model"
)

var ErrCompanyNotFound = errors.New("referenced company does not exist")

// AddressRepository handles company address data access.
type AddressRepository struct {
	pool *pgxpool.Pool
}

// NewAddressRepository creates a new AddressRepository.
func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool}
}

// GetByID retrieves an address by ID.
func (r *AddressRepository) GetByID(ctx context.Context, id int) (*model.Address, error) {
	a := &model.Address{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, country, province, municipality, postal_code, street, company_id, created_at, updated_at
		 FROM addresses WHERE id = $1`, id,
	).Scan(&a.ID, &a.Country, &a.Province, &a.Municipality, &a.PostalCode, &a.Street, &a.CompanyID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListByCompany retrieves all addresses for a company.
func (r *AddressRepository) ListByCompany(ctx context.Context, companyID int) ([]model.Address, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, country, province, municipality, postal_code, street, company_id, created_at, updated_at
		 FROM addresses WHERE company_id = $1 ORDER BY municipality, street`, companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []model.Address
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.Country, &a.Province, &a.Municipality, &a.PostalCode, &a.Street, &a.CompanyID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

// Create inserts a new address.
func (r *AddressRepository) Create(ctx context.Context, a *model.Address) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO addresses (country, province, municipality, postal_code, street, company_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		a.Country, a.Province, a.Municipality, a.PostalCode, a.Street, a.CompanyID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrCompanyNotFound
		}
		return err
	}
	return nil
}

// Update modifies an existing address.
func (r *AddressRepository) Update(ctx context.Context, a *model.Address) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE addresses SET country = $1, province = $2, municipality = $3, postal_code = $4,
			street = $5, company_id = $6, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $7`,
		a.Country, a.Province, a.Municipality, a.PostalCode, a.Street, a.CompanyID, a.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrCompanyNotFound
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// Delete removes an address by ID.
func (r *AddressRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
