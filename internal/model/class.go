package model

import "time"

// Class represents a school class of students.
type Class struct {
	ID               int       `json:"id"`
	Code             string    `json:"code"`
	Year             int       `json:"year"`
	CoordinatorEmail *string   `json:"coordinator_email"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateClassRequest is the payload for creating a class.
type CreateClassRequest struct {
	Code             string  `json:"code" binding:"required,min=2,max=16"`
	Year             int     `json:"year" binding:"required,min=2000,max=2100"`
	CoordinatorEmail *string `json:"coordinator_email" binding:"omitempty,email,max=255"`
}

// UpdateClassRequest is the payload for updating a class.
type UpdateClassRequest struct {
	Code             string  `json:"code" binding:"required,min=2,max=16"`
	Year             int     `json:"year" binding:"required,min=2000,max=2100"`
	CoordinatorEmail *string `json:"coordinator_email" binding:"omitempty,email,max=255"`
}
