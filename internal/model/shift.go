package model

import "time"

// Weekday is a working day name as stored on a shift.
// Shifts only run on school days, Monday through Friday.
type Weekday string

const (
	WeekdayMonday    Weekday = "Monday"
	WeekdayTuesday   Weekday = "Tuesday"
	WeekdayWednesday Weekday = "Wednesday"
	WeekdayThursday  Weekday = "Thursday"
	WeekdayFriday    Weekday = "Friday"
)

// weekdayOrder maps each working day to its position in the week.
var weekdayOrder = map[Weekday]int{
	WeekdayMonday:    1,
	WeekdayTuesday:   2,
	WeekdayWednesday: 3,
	WeekdayThursday:  4,
	WeekdayFriday:    5,
}

// Valid reports whether the weekday is a working day.
func (w Weekday) Valid() bool {
	_, ok := weekdayOrder[w]
	return ok
}

// Before reports whether w comes strictly before other in the week.
func (w Weekday) Before(other Weekday) bool {
	return weekdayOrder[w] < weekdayOrder[other]
}

// Shift represents an internship placement slot at a company.
type Shift struct {
	ID         int       `json:"id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	StartDay   Weekday   `json:"start_day"`
	EndDay     Weekday   `json:"end_day"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Seats      int       `json:"seats"`
	SeatsTaken int       `json:"seats_taken"`
	Hours      int       `json:"hours"`
	CompanyID  int       `json:"company_id"`
	AddressID  *int      `json:"address_id"`
	TutorID    *int      `json:"tutor_id"`
	Subjects   []string  `json:"subjects"`
	Sectors    []string  `json:"sectors"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateShiftRequest is the payload for opening a new shift.
type CreateShiftRequest struct {
	StartDate string   `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string   `json:"end_date" binding:"required,datetime=2006-01-02"`
	StartDay  Weekday  `json:"start_day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	EndDay    Weekday  `json:"end_day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	StartTime string   `json:"start_time" binding:"required,datetime=15:04"`
	EndTime   string   `json:"end_time" binding:"required,datetime=15:04"`
	Seats     int      `json:"seats" binding:"required,min=1,max=500"`
	Hours     int      `json:"hours" binding:"required,min=1,max=400"`
	CompanyID int      `json:"company_id" binding:"required,min=1"`
	AddressID *int     `json:"address_id" binding:"omitempty,min=1"`
	TutorID   *int     `json:"tutor_id" binding:"omitempty,min=1"`
	Subjects  []string `json:"subjects" binding:"omitempty,dive,min=1,max=100"`
	Sectors   []string `json:"sectors" binding:"omitempty,dive,min=1,max=100"`
}

// UpdateShiftRequest is the payload for updating a shift.
// Seats may not drop below the number already taken.
type UpdateShiftRequest struct {
	StartDate string   `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string   `json:"end_date" binding:"required,datetime=2006-01-02"`
	StartDay  Weekday  `json:"start_day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	EndDay    Weekday  `json:"end_day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	StartTime string   `json:"start_time" binding:"required,datetime=15:04"`
	EndTime   string   `json:"end_time" binding:"required,datetime=15:04"`
	Seats     int      `json:"seats" binding:"required,min=1,max=500"`
	Hours     int      `json:"hours" binding:"required,min=1,max=400"`
	CompanyID int      `json:"company_id" binding:"required,min=1"`
	AddressID *int     `json:"address_id" binding:"omitempty,min=1"`
	TutorID   *int     `json:"tutor_id" binding:"omitempty,min=1"`
	Subjects  []string `json:"subjects" binding:"omitempty,dive,min=1,max=100"`
	Sectors   []string `json:"sectors" binding:"omitempty,dive,min=1,max=100"`
}

// ShiftFilter narrows shift listings.
type ShiftFilter struct {
	CompanyID int    `form:"company_id" binding:"omitempty,min=1"`
	Year      int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Month     int    `form:"month" binding:"omitempty,min=1,max=12"`
	Subject   string `form:"subject" binding:"omitempty,max=100"`
	Sector    string `form:"sector" binding:"omitempty,max=100"`
}

// ShiftRoster pairs a shift with the students assigned to it.
type ShiftRoster struct {
	Shift    Shift     `json:"shift"`
	Students []Student `json:"students"`
}
