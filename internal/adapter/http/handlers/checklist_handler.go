package handlers

import (
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
	errInvalidChecklistPayload = pkg.NewDomainErrorSimple("INVALID_CHECKLIST_INPUT", "Invalid checklist payload", http.StatusBadRequest)
)

// ChecklistHandler handles HTTP requests for anti-fraud checklists.

type ChecklistHandler struct {
	usecase usecase.IChecklistUseCase
}

func NewChecklistHandler(uc usecase.IChecklistUseCase) *ChecklistHandler {
	return &ChecklistHandler{usecase: uc}
}

func (h *ChecklistHandler) CreateChecklist(c *gin.Context) {
	var payload request.CreateChecklistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChecklistPayload.HTTPStatus, errInvalidChecklistPayload.ToHTTPError())
		return
	}

	checklist, err := h.usecase.CreateChecklist(
		c.Request.Context(),
		payload.RepairID,
		entities.ChecklistType(payload.Type),
		payload.Photos,
		payload.Tests,
	)
	if err != nil {
		appErr := mapChecklistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromChecklist(checklist))
}

func (h *ChecklistHandler) GetChecklist(c *gin.Context) {
	checklist, err := h.usecase.GetChecklist(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapChecklistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChecklist(checklist))
}

// ListChecklists returns every checklist, or only one repair's when the
// repair_id query parameter is present.
func (h *ChecklistHandler) ListChecklists(c *gin.Context) {
	var (
		checklists []entities.Checklist
		err        error
	)
	if repairID := c.Query("repair_id"); repairID != "" {
		checklists, err = h.usecase.ListByRepair(c.Request.Context(), repairID)
	} else {
		checklists, err = h.usecase.ListChecklists(c.Request.Context())
	}
	if err != nil {
		appErr := mapChecklistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChecklists(checklists))
}

// AttachSignature records the customer's signature on a checklist. Signing
// again replaces the previous signature.
func (h *ChecklistHandler) AttachSignature(c *gin.Context) {
	var payload request.AttachSignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChecklistPayload.HTTPStatus, errInvalidChecklistPayload.ToHTTPError())
		return
	}

	checklist, err := h.usecase.AttachSignature(c.Request.Context(), c.Param("id"), payload.Signature)
	if err != nil {
		appErr := mapChecklistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChecklist(checklist))
}

func (h *ChecklistHandler) DeleteChecklist(c *gin.Context) {
	if err := h.usecase.DeleteChecklist(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapChecklistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapChecklistError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChecklistID),
		errors.Is(err, usecase.ErrInvalidChecklistType),
		errors.Is(err, usecase.ErrMissingRepairReference),
		errors.Is(err, usecase.ErrMissingSignatureContent):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChecklistNotFound):
		return pkg.NewDomainErrorSimple("CHECKLIST_NOT_FOUND", "Checklist not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRepairNotFound):
		return pkg.NewDomainErrorSimple("REPAIR_NOT_FOUND", "Repair not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
