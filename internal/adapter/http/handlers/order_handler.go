package handlers

import (
	"errors"
	"net/http"

	request "github.com/raisilvacor/clinicadomobile/internal/adapter/http/dto/request"
	response "github.com/raisilvacor/clinicadomobile/internal/adapter/http/dto/response"
	"github.com/raisilvacor/clinicadomobile/internal/usecase"
	"github.com/raisilvacor/clinicadomobile/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for pickup orders and the abandonment
// monitor.

type OrderHandler struct {
	usecase     usecase.IOrderUseCase
	abandonment usecase.IAbandonmentUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase, abandonment usecase.IAbandonmentUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc, abandonment: abandonment}
}

// EmitOrder runs the emission gate for a repair. The body is optional; an
// empty body emits with no observations and no pickup charge.
func (h *OrderHandler) EmitOrder(c *gin.Context) {
	var payload request.EmitOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
			return
		}
	}

	order, err := h.usecase.EmitOrder(c.Request.Context(), usecase.EmitOrderInput{
		RepairID:          c.Param("id"),
		Observations:      payload.Observations,
		EmittedBy:         payload.EmittedBy,
		CustomerReceived:  payload.CustomerReceived,
		CustomerSignature: payload.CustomerSignature,
		Payment:           payload.Payment,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrderByRepair resolves the OR emitted for a repair, if any.
func (h *OrderHandler) GetOrderByRepair(c *gin.Context) {
	order, err := h.usecase.GetOrderByRepair(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// ListAbandonmentAlerts lists completed repairs nobody picked up.
func (h *OrderHandler) ListAbandonmentAlerts(c *gin.Context) {
	alerts, err := h.abandonment.ListAbandonmentAlerts(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAbandonmentAlerts(alerts))
}

func mapOrderError(err error) *pkg.AppError {
	var unsigned *usecase.UnsignedChecklistsError
	switch {
	case errors.Is(err, usecase.ErrInvalidRepairID), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRepairNotFound):
		return pkg.NewDomainErrorSimple("REPAIR_NOT_FOUND", "Repair not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyEmitted):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EMITTED", "An order was already emitted for this repair", http.StatusConflict)
	case errors.Is(err, usecase.ErrRepairNotCompleted):
		return pkg.NewDomainErrorSimple("REPAIR_NOT_COMPLETED", "Repair is not completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingConclusionChecklist):
		return pkg.NewDomainErrorSimple("MISSING_CONCLUSION_CHECKLIST", "Conclusion checklist is required before emission", http.StatusConflict)
	case errors.As(err, &unsigned):
		// The Portuguese message names exactly which checklists still need a
		// signature; the operator relays it to the customer verbatim.
		return pkg.NewDomainErrorSimple("UNSIGNED_CHECKLISTS", unsigned.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrPickupPaymentFailed):
		return pkg.NewDomainError("PICKUP_PAYMENT_FAILED", "Pickup payment failed", err, http.StatusPaymentRequired)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
