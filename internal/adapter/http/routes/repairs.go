package routes

import (
	"github.com/raisilvacor/clinicadomobile/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRepairs = "/repairs"
	PathSearch  = "/search"
)

func addRepairRoutes(rg *gin.RouterGroup, repairHandler *handlers.RepairHandler, orderHandler *handlers.OrderHandler) {
	repairs := rg.Group(PathRepairs)
	{
		repairs.POST("", repairHandler.CreateRepair)
		repairs.GET("", repairHandler.ListRepairs)
		repairs.GET("/:id", repairHandler.GetRepair)
		repairs.PUT("/:id", repairHandler.UpdateRepair)
		repairs.DELETE("/:id", repairHandler.DeleteRepair)

		repairs.PATCH("/:id/status", repairHandler.SetStatus)
		repairs.PATCH("/:id/budget/approve", repairHandler.ApproveBudget)
		repairs.PATCH("/:id/budget/reject", repairHandler.RejectBudget)
		repairs.PATCH("/:id/complete", repairHandler.CompleteRepair)
		repairs.POST("/:id/messages", repairHandler.RecordMessage)

		// The OR lives under its repair: emission is a repair-scoped action.
		repairs.POST("/:id/order", orderHandler.EmitOrder)
		repairs.GET("/:id/order", orderHandler.GetOrderByRepair)
	}

	rg.GET(PathSearch, repairHandler.SearchByCPF)
}
