package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/repository"
	"github.com/pctowa/pctowa-backend/internal/response"
	"github.com/pctowa/pctowa-backend/internal/service"
	"github.com/pctowa/pctowa-backend/internal/validator"
)

// ShiftHandler handles internship shift management.
type ShiftHandler struct {
	shiftService  *service.ShiftService
	exportService *service.ExportService
}

// NewShiftHandler creates a new ShiftHandler.
func NewShiftHandler(shiftService *service.ShiftService, exportService *service.ExportService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService, exportService: exportService}
}

// ListShifts godoc
// GET /api/v1/shifts
// Lists shifts with pagination and optional filters:
// ?company_id= ?year= ?month= ?subject= ?sector=
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	page, perPage, limit, offset := getPagination(c)

	var filter model.ShiftFilter
	if fields := validator.BindQuery(c, &filter); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	shifts, total, err := h.shiftService.ListPaginated(c.Request.Context(), &filter, limit, offset)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"shifts": shifts}, buildPagination(page, perPage, total))
}

// ListCompanyShifts godoc
// GET /api/v1/companies/:id/shifts
// Lists the shifts hosted by a company.
func (h *ShiftHandler) ListCompanyShifts(c *gin.Context) {
	companyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	shifts, err := h.shiftService.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"shifts": shifts})
}

// GetShift godoc
// GET /api/v1/shifts/:id
// Returns a shift and its assigned students.
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	roster, err := h.shiftService.GetRoster(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, roster)
}

// CreateShift godoc
// POST /api/v1/shifts
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req model.CreateShiftRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	shift := shiftFromRequest(&req)
	if err := h.shiftService.Create(c.Request.Context(), shift); err != nil {
		respondShiftWriteError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"shift": shift})
}

// UpdateShift godoc
// PUT /api/v1/shifts/:id
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateShiftRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	shift := shiftFromRequest((*model.CreateShiftRequest)(&req))
	shift.ID = id

	if err := h.shiftService.Update(c.Request.Context(), shift); err != nil {
		respondShiftWriteError(c, err)
		return
	}

	updated, err := h.shiftService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"shift": updated})
}

// DeleteShift godoc
// DELETE /api/v1/shifts/:id
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.shiftService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "shift deleted successfully"})
}

// ExportShift godoc
// GET /api/v1/shifts/:id/export
// Streams an XLSX roster of the shift's students.
func (h *ShiftHandler) ExportShift(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	buf, err := h.exportService.ShiftRosterXLSX(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shift_`+c.Param("id")+`_roster.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func shiftFromRequest(req *model.CreateShiftRequest) *model.Shift {
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	return &model.Shift{
		StartDate: startDate,
		EndDate:   endDate,
		StartDay:  req.StartDay,
		EndDay:    req.EndDay,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Seats:     req.Seats,
		Hours:     req.Hours,
		CompanyID: req.CompanyID,
		AddressID: req.AddressID,
		TutorID:   req.TutorID,
		Subjects:  req.Subjects,
		Sectors:   req.Sectors,
	}
}

func respondShiftWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDayOrder):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidDayOrder)
	case errors.Is(err, service.ErrInvalidDateOrder), errors.Is(err, service.ErrInvalidTimeOrder):
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
	case errors.Is(err, repository.ErrSeatsBelowTaken):
		response.Fail(c, http.StatusConflict, response.ErrActionForbidden)
	case errors.Is(err, repository.ErrInvalidReference):
		// The referenced company, address, tutor, subject or sector
		// does not exist.
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, repository.ErrNoRowsAffected):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
