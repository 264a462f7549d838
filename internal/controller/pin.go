package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sovanrith/geoboard/internal/apperror"
	"github.com/sovanrith/geoboard/internal/constant"
	"github.com/sovanrith/geoboard/internal/model"
	"github.com/sovanrith/geoboard/internal/serializer"
	"github.com/sovanrith/geoboard/internal/util"
	"gorm.io/gorm"
)

type PinController struct {
	*baseController
}

// Both coordinates are required even on update; pins have no partial update.
type pinRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
}

func (pc PinController) IndexByProject(ctx *gin.Context) {
	projectID, ok := pc.parseID(ctx, "projectId", constant.ResourceProject)
	if !ok {
		return
	}

	key := fmt.Sprintf("projects:%d:pins", projectID)
	result, err := pc.app.Runner.RunRead(ctx, key, func(db *gorm.DB) (any, error) {
		exists, err := pc.app.Repository.Project.Exists(ctx, db, projectID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperror.NotFound(constant.ResourceProject)
		}

		pins, err := pc.app.Repository.Pin.ListByProject(ctx, db, projectID)
		if err != nil {
			return nil, err
		}

		return serializer.NewPins(pins), nil
	})
	if err != nil {
		pc.respondError(ctx, "pin.index", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, result)
}

func (pc PinController) Show(ctx *gin.Context) {
	id, ok := pc.parseID(ctx, "pinId", constant.ResourcePin)
	if !ok {
		return
	}

	key := fmt.Sprintf("pins:show:%d", id)
	result, err := pc.app.Runner.RunRead(ctx, key, func(db *gorm.DB) (any, error) {
		pin, err := pc.app.Repository.Pin.GetByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.NotFound(constant.ResourcePin)
			}
			return nil, err
		}

		return serializer.NewPin(pin, true), nil
	})
	if err != nil {
		pc.respondError(ctx, "pin.show", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, result)
}

func (pc PinController) Store(ctx *gin.Context) {
	projectID, ok := pc.parseID(ctx, "projectId", constant.ResourceProject)
	if !ok {
		return
	}

	var body pinRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseValidation(ctx, util.GenerateFieldErrors(err))
		return
	}

	var pin *model.Pin
	err := pc.app.Runner.RunMutation(ctx, "pin.create", func(tx *gorm.DB) error {
		exists, err := pc.app.Repository.Project.Exists(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if !exists {
			return apperror.NotFound(constant.ResourceProject)
		}

		pin, err = pc.app.Repository.Pin.Create(ctx, tx, &model.Pin{
			Latitude:  util.RoundCoordinate(*body.Latitude),
			Longitude: util.RoundCoordinate(*body.Longitude),
			ProjectID: projectID,
		})
		return err
	})
	if err != nil {
		pc.respondError(ctx, "pin.create", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusCreated, serializer.NewPin(pin, false))
}

func (pc PinController) Update(ctx *gin.Context) {
	id, ok := pc.parseID(ctx, "pinId", constant.ResourcePin)
	if !ok {
		return
	}

	var body pinRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseValidation(ctx, util.GenerateFieldErrors(err))
		return
	}

	latitude := util.RoundCoordinate(*body.Latitude)
	longitude := util.RoundCoordinate(*body.Longitude)

	var pin model.Pin
	err := pc.app.Runner.RunMutation(ctx, "pin.update", func(tx *gorm.DB) error {
		if err := tx.First(&pin, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound(constant.ResourcePin)
			}
			return err
		}

		if err := pc.app.Repository.Pin.Update(ctx, tx, id, latitude, longitude); err != nil {
			return err
		}

		pin.Latitude = latitude
		pin.Longitude = longitude
		return nil
	})
	if err != nil {
		pc.respondError(ctx, "pin.update", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, serializer.NewPin(&pin, false))
}

func (pc PinController) Destroy(ctx *gin.Context) {
	id, ok := pc.parseID(ctx, "pinId", constant.ResourcePin)
	if !ok {
		return
	}

	err := pc.app.Runner.RunMutation(ctx, "pin.delete", func(tx *gorm.DB) error {
		var pin model.Pin
		if err := tx.First(&pin, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound(constant.ResourcePin)
			}
			return err
		}

		return pc.app.Repository.Pin.Delete(ctx, tx, id)
	})
	if err != nil {
		pc.respondError(ctx, "pin.delete", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, gin.H{"message": "Pin deleted successfully"})
}
