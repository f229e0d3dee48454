package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pctowa/pctowa-backend/internal/model"
)

// ContactRepository handles company contact data access.
type ContactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// GetByID retrieves a contact by ID.
func (r *ContactRepository) GetByID(ctx context.Context, id int) (*model.Contact, error) {
	ct := &model.Contact{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, phone, email, role, company_id, created_at, updated_at
		 FROM contacts WHERE id = $1`, id,
	).Scan(&ct.ID, &ct.FirstName, &ct.LastName, &ct.Phone, &ct.Email, &ct.Role, &ct.CompanyID, &ct.CreatedAt, &ct.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return ct, nil
}

// ListByCompany retrieves all contacts for a company.
func (r *ContactRepository) ListByCompany(ctx context.Context, companyID int) ([]model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name, phone, email, role, company_id, created_at, updated_at
		 FROM contacts WHERE company_id = $1 ORDER BY last_name, first_name`, companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		var ct model.Contact
		if err := rows.Scan(&ct.ID, &ct.FirstName, &ct.LastName, &ct.Phone, &ct.Email, &ct.Role, &ct.CompanyID, &ct.CreatedAt, &ct.UpdatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, ct)
	}
	return contacts, rows.Err()
}

// Create inserts a new contact.
func (r *ContactRepository) Create(ctx context.Context, ct *model.Contact) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contacts (first_name, last_name, phone, email, role, company_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		ct.FirstName, ct.LastName, ct.Phone, ct.Email, ct.Role, ct.CompanyID,
	).Scan(&ct.ID, &ct.CreatedAt, &ct.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrCompanyNotFound
		}
		return err
	}
	return nil
}

// Update modifies an existing contact.
func (r *ContactRepository) Update(ctx context.Context, ct *model.Contact) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contacts SET first_name = $1, last_name = $2, phone = $3, email = $4,
			role = $5, company_id = $6, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $7`,
		ct.FirstName, ct.LastName, ct.Phone, ct.Email, ct.Role, ct.CompanyID, ct.ID,
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

// Delete removes a contact by ID.
func (r *ContactRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
