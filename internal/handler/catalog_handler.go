package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/repository"
	"github.com/pctowa/pctowa-backend/internal/response"
	"github.com/pctowa/pctowa-backend/internal/service"
	"github.com/pctowa/pctowa-backend/internal/validator"
)

// CatalogHandler handles the lookup tables: sectors, legal forms and
// subjects.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListSectors godoc
// GET /api/v1/sectors
func (h *CatalogHandler) ListSectors(c *gin.Context) {
	sectors, err := h.catalogService.ListSectors(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sectors": sectors})
}

// CreateSector godoc
// POST /api/v1/sectors
func (h *CatalogHandler) CreateSector(c *gin.Context) {
	var req model.CreateSectorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sector := &model.Sector{Name: req.Name}
	if err := h.catalogService.CreateSector(c.Request.Context(), sector); err != nil {
		respondCatalogWriteError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"sector": sector})
}

// DeleteSector godoc
// DELETE /api/v1/sectors/:name
func (h *CatalogHandler) DeleteSector(c *gin.Context) {
	if err := h.catalogService.DeleteSector(c.Request.Context(), c.Param("name")); err != nil {
		respondCatalogWriteError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "sector deleted successfully"})
}

// ListLegalForms godoc
// GET /api/v1/legal-forms
func (h *CatalogHandler) ListLegalForms(c *gin.Context) {
	forms, err := h.catalogService.ListLegalForms(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"legal_forms": forms})
}

// CreateLegalForm godoc
// POST /api/v1/legal-forms
func (h *CatalogHandler) CreateLegalForm(c *gin.Context) {
	var req model.CreateLegalFormRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	form := &model.LegalForm{Name: req.Name}
	if err := h.catalogService.CreateLegalForm(c.Request.Context(), form); err != nil {
		respondCatalogWriteError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"legal_form": form})
}

// DeleteLegalForm godoc
// DELETE /api/v1/legal-forms/:name
func (h *CatalogHandler) DeleteLegalForm(c *gin.Context) {
	if err := h.catalogService.DeleteLegalForm(c.Request.Context(), c.Param("name")); err != nil {
		respondCatalogWriteError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "legal form deleted successfully"})
}

// ListSubjects godoc
// GET /api/v1/subjects
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.catalogService.ListSubjects(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subjects": subjects})
}

// CreateSubject godoc
// POST /api/v1/subjects
func (h *CatalogHandler) CreateSubject(c *gin.Context) {
	var req model.CreateSubjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	subject := &model.Subject{Name: req.Name, Description: req.Description, HexColor: req.HexColor}
	if err := h.catalogService.CreateSubject(c.Request.Context(), subject); err != nil {
		respondCatalogWriteError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"subject": subject})
}

// UpdateSubject godoc
// PUT /api/v1/subjects/:name
func (h *CatalogHandler) UpdateSubject(c *gin.Context) {
	var req model.UpdateSubjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	subject := &model.Subject{
		Name:        c.Param("name"),
		Description: req.Description,
		HexColor:    req.HexColor,
	}
	if err := h.catalogService.UpdateSubject(c.Request.Context(), subject); err != nil {
		respondCatalogWriteError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subject": subject})
}

// DeleteSubject godoc
// DELETE /api/v1/subjects/:name
func (h *CatalogHandler) DeleteSubject(c *gin.Context) {
	if err := h.catalogService.DeleteSubject(c.Request.Context(), c.Param("name")); err != nil {
		respondCatalogWriteError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "subject deleted successfully"})
}

func respondCatalogWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrDuplicateName):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, repository.ErrNoRowsAffected):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
