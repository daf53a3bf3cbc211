package routes

import (
	"github.com/raisilvacor/clinicadomobile/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathChecklists = "/checklists"

func addChecklistRoutes(rg *gin.RouterGroup, checklistHandler *handlers.ChecklistHandler) {
	checklists := rg.Group(PathChecklists)
	{
		checklists.POST("", checklistHandler.CreateChecklist)
		checklists.GET("", checklistHandler.ListChecklists)
		checklists.GET("/:id", checklistHandler.GetChecklist)
		checklists.DELETE("/:id", checklistHandler.DeleteChecklist)

		checklists.POST("/:id/signature", checklistHandler.AttachSignature)
	}
}
