package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/repository"
	"github.com/pctowa/pctowa-backend/internal/response"
	"github.com/pctowa/pctowa-backend/internal/service"
	"github.com/pctowa/pctowa-backend/internal/validator"
)

// StudentHandler handles student management and shift assignments.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// ListStudents godoc
// GET /api/v1/students
// Lists students with pagination and optional ?class_id= filter.
func (h *StudentHandler) ListStudents(c *gin.Context) {
	page, perPage, limit, offset := getPagination(c)

	var classID *int
	if raw := c.Query("class_id"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
		classID = &n
	}

	students, total, err := h.studentService.ListPaginated(c.Request.Context(), classID, limit, offset)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"students": students}, buildPagination(page, perPage, total))
}

// ListClassStudents godoc
// GET /api/v1/classes/:id/students
// Lists the students enrolled in a class.
func (h *StudentHandler) ListClassStudents(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	page, perPage, limit, offset := getPagination(c)

	students, total, err := h.studentService.ListPaginated(c.Request.Context(), &classID, limit, offset)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"students": students}, buildPagination(page, perPage, total))
}

// ListShiftStudents godoc
// GET /api/v1/shifts/:id/students
// Lists the students assigned to a shift.
func (h *StudentHandler) ListShiftStudents(c *gin.Context) {
	shiftID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	students, err := h.studentService.ListByShift(c.Request.Context(), shiftID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// GetStudent godoc
// GET /api/v1/students/:number
// Returns a student and the shifts they are assigned to.
func (h *StudentHandler) GetStudent(c *gin.Context) {
	number := c.Param("number")

	student, err := h.studentService.GetByNumber(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	shifts, err := h.studentService.ListShifts(c.Request.Context(), number)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student": student, "shifts": shifts})
}

// CreateStudent godoc
// POST /api/v1/students
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := &model.Student{
		Number:       req.Number,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Municipality: req.Municipality,
		ClassID:      req.ClassID,
	}

	if err := h.studentService.Create(c.Request.Context(), student); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateNumber):
			response.Fail(c, http.StatusConflict, response.ErrConflict)
		case errors.Is(err, repository.ErrClassNotFound):
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// UpdateStudent godoc
// PUT /api/v1/students/:number
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := &model.Student{
		Number:       c.Param("number"),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Municipality: req.Municipality,
		ClassID:      req.ClassID,
	}

	if err := h.studentService.Update(c.Request.Context(), student); err != nil {
		switch {
		case errors.Is(err, repository.ErrNoRowsAffected):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, repository.ErrClassNotFound):
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	updated, err := h.studentService.GetByNumber(c.Request.Context(), student.Number)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": updated})
}

// DeleteStudent godoc
// DELETE /api/v1/students/:number
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	if err := h.studentService.Delete(c.Request.Context(), c.Param("number")); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "student deleted successfully"})
}

// AssignShift godoc
// POST /api/v1/students/:number/shifts
// Binds the student to a shift, taking one seat.
func (h *StudentHandler) AssignShift(c *gin.Context) {
	var req model.AssignShiftRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	err := h.studentService.AssignShift(c.Request.Context(), c.Param("number"), req.ShiftID)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows), errors.Is(err, repository.ErrShiftNotFound),
			errors.Is(err, repository.ErrStudentNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, repository.ErrShiftFull):
			response.Fail(c, http.StatusConflict, response.ErrShiftFull)
		case errors.Is(err, repository.ErrAlreadyAssigned):
			response.Fail(c, http.StatusConflict, response.ErrAlreadyAssigned)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "student assigned to shift"})
}

// UnassignShift godoc
// DELETE /api/v1/students/:number/shifts/:shiftId
// Removes the student from a shift and frees the seat.
func (h *StudentHandler) UnassignShift(c *gin.Context) {
	shiftID, err := strconv.Atoi(c.Param("shiftId"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.studentService.UnassignShift(c.Request.Context(), c.Param("number"), shiftID); err != nil {
		if errors.Is(err, repository.ErrNotAssigned) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "student removed from shift"})
}
