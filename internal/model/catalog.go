package model

// Sector is an economic sector companies and shifts are tagged with.
// The name itself is the primary key.
type Sector struct {
	Name string `json:"name"`
}

// LegalForm is a company's legal structure (e.g. "S.r.l.", "S.p.A.").
type LegalForm struct {
	Name string `json:"name"`
}

// Subject is a school subject a shift can count toward.
type Subject struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	HexColor    *string `json:"hex_color"`
}

// CreateSectorRequest is the payload for adding a sector.
type CreateSectorRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// CreateLegalFormRequest is the payload for adding a legal form.
type CreateLegalFormRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// CreateSubjectRequest is the payload for adding a subject.
type CreateSubjectRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	HexColor    *string `json:"hex_color" binding:"omitempty,hexcolor"`
}

// UpdateSubjectRequest is the payload for updating a subject.
type UpdateSubjectRequest struct {
	Description *string `json:"description" binding:"omitempty,max=500"`
	HexColor    *string `json:"hex_color" binding:"omitempty,hexcolor"`
}
