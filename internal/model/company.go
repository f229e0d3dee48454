package model

import "time"

// Company represents a host organization offering internship placements.
type Company struct {
	ID              int        `json:"id"`
	BusinessName    string     `json:"business_name"`
	Name            string     `json:"name"`
	Website         *string    `json:"website"`
	LogoURL         *string    `json:"logo_url"`
	AtecoCode       *string    `json:"ateco_code"`
	VATNumber       string     `json:"vat_number"`
	Phone           *string    `json:"phone"`
	Fax             *string    `json:"fax"`
	Email           *string    `json:"email"`
	PEC             *string    `json:"pec"`
	LegalForm       *string    `json:"legal_form"`
	AgreementDate   *time.Time `json:"agreement_date"`
	AgreementExpiry *time.Time `json:"agreement_expiry"`
	Category        *string    `json:"category"`
	Sector          *string    `json:"sector"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CreateCompanyRequest is the payload for registering a new company.
type CreateCompanyRequest struct {
	BusinessName    string  `json:"business_name" binding:"required,min=2,max=255"`
	Name            string  `json:"name" binding:"required,min=2,max=255"`
	Website         *string `json:"website" binding:"omitempty,url,max=255"`
	LogoURL         *string `json:"logo_url" binding:"omitempty,url,max=255"`
	AtecoCode       *string `json:"ateco_code" binding:"omitempty,max=16"`
	VATNumber       string  `json:"vat_number" binding:"required,len=11,numeric"`
	Phone           *string `json:"phone" binding:"omitempty,max=32"`
	Fax             *string `json:"fax" binding:"omitempty,max=32"`
	Email           *string `json:"email" binding:"omitempty,email,max=255"`
	PEC             *string `json:"pec" binding:"omitempty,email,max=255"`
	LegalForm       *string `json:"legal_form" binding:"omitempty,max=100"`
	AgreementDate   *string `json:"agreement_date" binding:"omitempty,datetime=2006-01-02"`
	AgreementExpiry *string `json:"agreement_expiry" binding:"omitempty,datetime=2006-01-02"`
	Category        *string `json:"category" binding:"omitempty,max=100"`
	Sector          *string `json:"sector" binding:"omitempty,max=100"`
}

// UpdateCompanyRequest is the payload for updating an existing company.
type UpdateCompanyRequest struct {
	BusinessName    string  `json:"business_name" binding:"required,min=2,max=255"`
	Name            string  `json:"name" binding:"required,min=2,max=255"`
	Website         *string `json:"website" binding:"omitempty,url,max=255"`
	LogoURL         *string `json:"logo_url" binding:"omitempty,url,max=255"`
	AtecoCode       *string `json:"ateco_code" binding:"omitempty,max=16"`
	VATNumber       string  `json:"vat_number" binding:"required,len=11,numeric"`
	Phone           *string `json:"phone" binding:"omitempty,max=32"`
	Fax             *string `json:"fax" binding:"omitempty,max=32"`
	Email           *string `json:"email" binding:"omitempty,email,max=255"`
	PEC             *string `json:"pec" binding:"omitempty,email,max=255"`
	LegalForm       *string `json:"legal_form" binding:"omitempty,max=100"`
	AgreementDate   *string `json:"agreement_date" binding:"omitempty,datetime=2006-01-02"`
	AgreementExpiry *string `json:"agreement_expiry" binding:"omitempty,datetime=2006-01-02"`
	Category        *string `json:"category" binding:"omitempty,max=100"`
	Sector          *string `json:"sector" binding:"omitempty,max=100"`
}

// CompanyFilter narrows company listings. All criteria are optional and
// combine with AND semantics. Year and Month apply to the company's shifts.
type CompanyFilter struct {
	Year         int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Month        int    `form:"month" binding:"omitempty,min=1,max=12"`
	Municipality string `form:"municipality" binding:"omitempty,max=100"`
	Sector       string `form:"sector" binding:"omitempty,max=100"`
	Subject      string `form:"subject" binding:"omitempty,max=100"`
}

// CompanyDetail bundles a company with its dependent records.
type CompanyDetail struct {
	Company   Company   `json:"company"`
	Addresses []Address `json:"addresses"`
	Contacts  []Contact `json:"contacts"`
	Shifts    []Shift   `json:"shifts"`
}
