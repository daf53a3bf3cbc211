package handlers

import (
	"context"
	"errors"
	"net/http"

	request "github.com/raisilvacor/clinicadomobile/internal/adapter/http/dto/request"
	response "github.com/raisilvacor/clinicadomobile/internal/adapter/http/dto/response"
	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	"github.com/raisilvacor/clinicadomobile/internal/usecase"
	"github.com/raisilvacor/clinicadomobile/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRepairPayload = pkg.NewDomainErrorSimple("INVALID_REPAIR_INPUT", "Invalid repair payload", http.StatusBadRequest)
)

// RepairHandler handles HTTP requests for the repair lifecycle, including the
// admin CPF search.

type RepairHandler struct {
	usecase usecase.IRepairUseCase
}

func NewRepairHandler(uc usecase.IRepairUseCase) *RepairHandler {
	return &RepairHandler{usecase: uc}
}

// CreateRepair registers a device intake, optionally already quoted.
func (h *RepairHandler) CreateRepair(c *gin.Context) {
	var payload request.CreateRepairRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairPayload.HTTPStatus, errInvalidRepairPayload.ToHTTPError())
		return
	}

	repair, err := h.usecase.CreateRepair(c.Request.Context(), payload.Device(), payload.Customer(), payload.Budget())
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRepair(repair))
}

func (h *RepairHandler) GetRepair(c *gin.Context) {
	repair, err := h.usecase.GetRepair(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRepair(repair))
}

func (h *RepairHandler) ListRepairs(c *gin.Context) {
	repairs, err := h.usecase.ListRepairs(c.Request.Context())
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRepairs(repairs))
}

// UpdateRepair replaces the editable device and customer fields. Lifecycle
// state (status, budget, warranty, order link) is not editable here.
func (h *RepairHandler) UpdateRepair(c *gin.Context) {
	var payload request.UpdateRepairRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairPayload.HTTPStatus, errInvalidRepairPayload.ToHTTPError())
		return
	}

	repair, err := h.usecase.UpdateDetails(c.Request.Context(), c.Param("id"), payload.Device(), payload.Customer())
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRepair(repair))
}

func (h *RepairHandler) DeleteRepair(c *gin.Context) {
	if err := h.usecase.DeleteRepair(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SetStatus moves a repair to a new board column.
func (h *RepairHandler) SetStatus(c *gin.Context) {
	var payload request.SetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairPayload.HTTPStatus, errInvalidRepairPayload.ToHTTPError())
		return
	}

	repair, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), entities.RepairStatus(payload.Status), payload.Actor)
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRepair(repair))
}

func (h *RepairHandler) ApproveBudget(c *gin.Context) {
	h.decideBudget(c, h.usecase.ApproveBudget)
}

func (h *RepairHandler) RejectBudget(c *gin.Context) {
	h.decideBudget(c, h.usecase.RejectBudget)
}

func (h *RepairHandler) decideBudget(c *gin.Context, decide func(ctx context.Context, repairID, actor string) (entities.Repair, error)) {
	var payload request.BudgetDecisionRequest
	// Body is optional; an empty body means the admin decided at the counter.
	_ = c.ShouldBindJSON(&payload)

	repair, err := decide(c.Request.Context(), c.Param("id"), payload.Actor)
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRepair(repair))
}

// CompleteRepair marks the work done and issues the warranty.
func (h *RepairHandler) CompleteRepair(c *gin.Context) {
	repair, err := h.usecase.CompleteRepair(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRepair(repair))
}

// RecordMessage appends a customer-facing notice to the repair.
func (h *RepairHandler) RecordMessage(c *gin.Context) {
	var payload request.RecordMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairPayload.HTTPStatus, errInvalidRepairPayload.ToHTTPError())
		return
	}

	msgType := entities.MessageType(payload.Type)
	if payload.Type == "" {
		msgType = entities.MessageTypeAdmin
	}

	repair, err := h.usecase.RecordMessage(c.Request.Context(), c.Param("id"), msgType, payload.Content)
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromRepair(repair))
}

// SearchByCPF returns everything linked to a customer CPF.
func (h *RepairHandler) SearchByCPF(c *gin.Context) {
	cpf := c.Query("cpf")
	if cpf == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing cpf query parameter", http.StatusBadRequest).ToHTTPError())
		return
	}

	result, err := h.usecase.SearchByCPF(c.Request.Context(), cpf)
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCPFSearch(result))
}

func mapRepairError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRepairID),
		errors.Is(err, usecase.ErrInvalidCPF),
		errors.Is(err, usecase.ErrInvalidBudgetAmount),
		errors.Is(err, usecase.ErrInvalidMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRepairNotFound):
		return pkg.NewDomainErrorSimple("REPAIR_NOT_FOUND", "Repair not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoBudget):
		return pkg.NewDomainErrorSimple("NO_BUDGET", "Repair has no budget to decide on", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
