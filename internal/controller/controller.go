package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	appcontext "github.com/sovanrith/geoboard/internal/app_context"
	"github.com/sovanrith/geoboard/internal/apperror"
	"github.com/sovanrith/geoboard/internal/util"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index   *IndexController
	Region  *RegionController
	Project *ProjectController
	Pin     *PinController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:   &IndexController{baseController: bc},
		Region:  &RegionController{baseController: bc},
		Project: &ProjectController{baseController: bc},
		Pin:     &PinController{baseController: bc},
	}
}

// parseID resolves a numeric path parameter. A malformed id behaves like a
// missing resource.
func (b *baseController) parseID(ctx *gin.Context, param, resource string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil || id == 0 {
		util.ResponseError(ctx, http.StatusNotFound, resource+" not found")
		return 0, false
	}

	return uint(id), true
}

// respondError maps the error taxonomy to HTTP responses. Anything outside
// the taxonomy is an internal failure; only a generic message crosses the
// API boundary.
func (b *baseController) respondError(ctx *gin.Context, operation string, err error) {
	var ve *apperror.ValidationError
	if errors.As(err, &ve) {
		util.ResponseValidation(ctx, ve.Errors)
		return
	}

	var nf *apperror.NotFoundError
	if errors.As(err, &nf) {
		util.ResponseError(ctx, http.StatusNotFound, nf.Error())
		return
	}

	var br *apperror.BusinessRuleError
	if errors.As(err, &br) {
		util.ResponseError(ctx, http.StatusBadRequest, br.Message)
		return
	}

	b.app.Logger.Errorw("operation failed", "operation", operation, "error", err)
	util.ResponseError(ctx, http.StatusInternalServerError, "Internal server error")
}
