package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/repository"
	"github.com/pctowa/pctowa-backend/internal/response"
	"github.com/pctowa/pctowa-backend/internal/service"
	"github.com/pctowa/pctowa-backend/internal/validator"
)

// CompanyHandler handles company management.
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// ListCompanies godoc
// GET /api/v1/companies
// Lists companies with pagination and optional filters:
// ?year= ?month= ?municipality= ?sector= ?subject=
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	page, perPage, limit, offset := getPagination(c)

	var filter model.CompanyFilter
	if fields := validator.BindQuery(c, &filter); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	companies, total, err := h.companyService.ListPaginated(c.Request.Context(), &filter, limit, offset)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"companies": companies}, buildPagination(page, perPage, total))
}

// GetCompany godoc
// GET /api/v1/companies/:id
// Returns a company with its addresses, contacts and shifts.
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	detail, err := h.companyService.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// CreateCompany godoc
// POST /api/v1/companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req model.CreateCompanyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	company := companyFromRequest(&req)
	if err := h.companyService.Create(c.Request.Context(), company); err != nil {
		respondCompanyWriteError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"company": company})
}

// UpdateCompany godoc
// PUT /api/v1/companies/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateCompanyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	company := companyFromRequest((*model.CreateCompanyRequest)(&req))
	company.ID = id

	if err := h.companyService.Update(c.Request.Context(), company); err != nil {
		respondCompanyWriteError(c, err)
		return
	}

	updated, err := h.companyService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"company": updated})
}

// DeleteCompany godoc
// DELETE /api/v1/companies/:id
// Deletes a company. Addresses and contacts cascade; active shifts
// block the delete.
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "company deleted successfully"})
}

func companyFromRequest(req *model.CreateCompanyRequest) *model.Company {
	return &model.Company{
		BusinessName:    req.BusinessName,
		Name:            req.Name,
		Website:         req.Website,
		LogoURL:         req.LogoURL,
		AtecoCode:       req.AtecoCode,
		VATNumber:       req.VATNumber,
		Phone:           req.Phone,
		Fax:             req.Fax,
		Email:           req.Email,
		PEC:             req.PEC,
		LegalForm:       req.LegalForm,
		AgreementDate:   parseDate(req.AgreementDate),
		AgreementExpiry: parseDate(req.AgreementExpiry),
		Category:        req.Category,
		Sector:          req.Sector,
	}
}

func respondCompanyWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrDuplicateVAT):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, repository.ErrNoRowsAffected):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// parseDate converts an optional "2006-01-02" string, already validated
// at binding time, into a time pointer.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
