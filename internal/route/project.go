package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sovanrith/geoboard/internal/controller"
)

func Projects(r *gin.RouterGroup, pc *controller.ProjectController, pinController *controller.PinController) {
	projects := r.Group("/projects")
	{
		projects.GET("/:projectId", pc.Show)
		projects.PUT("/:projectId", pc.Update)
		projects.DELETE("/:projectId", pc.Destroy)

		projects.GET("/:projectId/pins", pinController.IndexByProject)
		projects.POST("/:projectId/pins", pinController.Store)
	}
}
