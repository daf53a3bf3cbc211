package routes

import (
	"github.com/raisilvacor/clinicadomobile/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
	PathAlerts = "/alerts"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
	}

	alerts := rg.Group(PathAlerts)
	{
		alerts.GET("/abandonment", orderHandler.ListAbandonmentAlerts)
	}
}
