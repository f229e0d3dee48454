package model

import "time"

// Student represents an enrolled student. Number is the five-digit
// registration code used as primary key.
type Student struct {
	Number       string    `json:"number"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Municipality *string   `json:"municipality"`
	ClassID      int       `json:"class_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateStudentRequest is the payload for enrolling a student.
type CreateStudentRequest struct {
	Number       string  `json:"number" binding:"required,len=5,numeric"`
	FirstName    string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName     string  `json:"last_name" binding:"required,min=1,max=100"`
	Municipality *string `json:"municipality" binding:"omitempty,max=100"`
	ClassID      int     `json:"class_id" binding:"required,min=1"`
}

// UpdateStudentRequest is the payload for updating a student record.
type UpdateStudentRequest struct {
	FirstName    string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName     string  `json:"last_name" binding:"required,min=1,max=100"`
	Municipality *string `json:"municipality" binding:"omitempty,max=100"`
	ClassID      int     `json:"class_id" binding:"required,min=1"`
}

// AssignShiftRequest binds a student to a shift.
type AssignShiftRequest struct {
	ShiftID int `json:"shift_id" binding:"required,min=1"`
}
