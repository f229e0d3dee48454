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

// AddressHandler handles company address management.
type AddressHandler struct {
	addressService *service.AddressService
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(addressService *service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// ListAddresses godoc
// GET /api/v1/companies/:id/addresses
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	companyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	addresses, err := h.addressService.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"addresses": addresses})
}

// GetAddress godoc
// GET /api/v1/addresses/:id
func (h *AddressHandler) GetAddress(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	address, err := h.addressService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"address": address})
}

// CreateAddress godoc
// POST /api/v1/addresses
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var req model.CreateAddressRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	address := &model.Address{
		Country:      req.Country,
		Province:     req.Province,
		Municipality: req.Municipality,
		PostalCode:   req.PostalCode,
		Street:       req.Street,
		CompanyID:    req.CompanyID,
	}

	if err := h.addressService.Create(c.Request.Context(), address); err != nil {
		respondAddressWriteError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"address": address})
}

// UpdateAddress godoc
// PUT /api/v1/addresses/:id
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateAddressRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	address := &model.Address{
		ID:           id,
		Country:      req.Country,
		Province:     req.Province,
		Municipality: req.Municipality,
		PostalCode:   req.PostalCode,
		Street:       req.Street,
		CompanyID:    req.CompanyID,
	}

	if err := h.addressService.Update(c.Request.Context(), address); err != nil {
		respondAddressWriteError(c, err)
		return
	}

	updated, err := h.addressService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"address": updated})
}

// DeleteAddress godoc
// DELETE /api/v1/addresses/:id
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.addressService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "address deleted successfully"})
}

func respondAddressWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrCompanyNotFound):
		response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
	case errors.Is(err, repository.ErrNoRowsAffected):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
