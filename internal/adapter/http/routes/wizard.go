package routes

import (
	"interior_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWizard = "/wizard"

// addWizardRoutes registers the session flow. The itemized breakdown and the
// export sit behind auth; the summary is public.
func addWizardRoutes(rg *gin.RouterGroup, h *handlers.WizardHandler, limit, auth gin.HandlerFunc) {
	wizard := rg.Group(PathWizard)
	{
		wizard.POST("", limit, h.Start)
		wizard.GET("/:id", h.Get)
		wizard.DELETE("/:id", h.Delete)

		wizard.PUT("/:id/project-type", h.ChooseProjectType)
		wizard.PUT("/:id/bhk", h.SelectBhk)
		wizard.PUT("/:id/rooms/:room_key", h.SetRoom)
		wizard.DELETE("/:id/rooms/:room_key", h.RemoveRoom)
		wizard.PUT("/:id/details", h.SetProjectDetails)
		wizard.PUT("/:id/package", h.SelectPackage)
		wizard.PUT("/:id/client", h.SetClientInfo)
		wizard.PUT("/:id/commercial", h.SetCommercialForm)

		wizard.POST("/:id/next", h.Next)
		wizard.POST("/:id/back", h.Back)
		wizard.POST("/:id/start-over", h.StartOver)

		wizard.GET("/:id/summary", h.Summary)
		wizard.GET("/:id/breakdown", auth, h.Breakdown)
		wizard.GET("/:id/export", auth, h.Export)
	}
}
