package model

import "time"

// Address is a physical location belonging to a company.
type Address struct {
	ID           int       `json:"id"`
	Country      string    `json:"country"`
	Province     string    `json:"province"`
	Municipality string    `json:"municipality"`
	PostalCode   string    `json:"postal_code"`
	Street       string    `json:"street"`
	CompanyID    int       `json:"company_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateAddressRequest is the payload for adding a company address.
type CreateAddressRequest struct {
	Country      string `json:"country" binding:"required,min=2,max=100"`
	Province     string `json:"province" binding:"required,min=2,max=100"`
	Municipality string `json:"municipality" binding:"required,min=1,max=100"`
	PostalCode   string `json:"postal_code" binding:"required,min=4,max=10"`
	Street       string `json:"street" binding:"required,min=2,max=255"`
	CompanyID    int    `json:"company_id" binding:"required,min=1"`
}

// UpdateAddressRequest is the payload for updating a company address.
type UpdateAddressRequest struct {
	Country      string `json:"country" binding:"required,min=2,max=100"`
	Province     string `json:"province" binding:"required,min=2,max=100"`
	Municipality string `json:"municipality" binding:"required,min=1,max=100"`
	PostalCode   string `json:"postal_code" binding:"required,min=4,max=10"`
	Street       string `json:"street" binding:"required,min=2,max=255"`
	CompanyID    int    `json:"company_id" binding:"required,min=1"`
}
