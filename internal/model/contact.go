package model

import "time"

// Contact is a reference person at a company.
type Contact struct {
	ID        int       `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	Role      *string   `json:"role"`
	CompanyID int       `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateContactRequest is the payload for adding a company contact.
type CreateContactRequest struct {
	FirstName string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string  `json:"last_name" binding:"required,min=1,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=32"`
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	Role      *string `json:"role" binding:"omitempty,max=100"`
	CompanyID int     `json:"company_id" binding:"required,min=1"`
}

// UpdateContactRequest is the payload for updating a company contact.
type UpdateContactRequest struct {
	FirstName string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string  `json:"last_name" binding:"required,min=1,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=32"`
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	Role      *string `json:"role" binding:"omitempty,max=100"`
	CompanyID int     `json:"company_id" binding:"required,min=1"`
}
