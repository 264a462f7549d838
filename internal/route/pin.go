package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sovanrith/geoboard/internal/controller"
)

func Pins(r *gin.RouterGroup, pc *controller.PinController) {
	pins := r.Group("/pins")
	{
		pins.GET("/:pinId", pc.Show)
		pins.PUT("/:pinId", pc.Update)
		pins.DELETE("/:pinId", pc.Destroy)
	}
}
