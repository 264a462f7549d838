package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sovanrith/geoboard/internal/util"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseJSON(ctx, http.StatusOK, gin.H{"status": "ok"})
}
