package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sovanrith/geoboard/internal/controller"
)

func Regions(r *gin.RouterGroup, rc *controller.RegionController, pc *controller.ProjectController) {
	regions := r.Group("/regions")
	{
		regions.GET("", rc.Index)
		regions.POST("", rc.Store)
		regions.GET("/:regionId", rc.Show)
		regions.PUT("/:regionId", rc.Update)
		regions.DELETE("/:regionId", rc.Destroy)

		regions.GET("/:regionId/projects", pc.IndexByRegion)
		regions.POST("/:regionId/projects", pc.Store)
	}
}
