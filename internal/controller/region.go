package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sovanrith/geoboard/internal/apperror"
	"github.com/sovanrith/geoboard/internal/constant"
	"github.com/sovanrith/geoboard/internal/model"
	"github.com/sovanrith/geoboard/internal/serializer"
	"github.com/sovanrith/geoboard/internal/transaction"
	"github.com/sovanrith/geoboard/internal/util"
	"gorm.io/gorm"
)

type RegionController struct {
	*baseController
}

const ErrRegionHasProjects = "Cannot delete region with existing projects. Pass force_delete=true to delete the region and all of its projects and pins."

func (rc RegionController) Index(ctx *gin.Context) {
	result, err := rc.app.Runner.RunRead(ctx, "regions:index", func(db *gorm.DB) (any, error) {
		regions, err := rc.app.Repository.Region.List(ctx, db)
		if err != nil {
			return nil, err
		}

		return serializer.NewRegions(regions), nil
	})
	if err != nil {
		rc.respondError(ctx, "region.index", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, result)
}

func (rc RegionController) Show(ctx *gin.Context) {
	id, ok := rc.parseID(ctx, "regionId", constant.ResourceRegion)
	if !ok {
		return
	}

	key := fmt.Sprintf("regions:show:%d", id)
	result, err := rc.app.Runner.RunRead(ctx, key, func(db *gorm.DB) (any, error) {
		region, err := rc.app.Repository.Region.GetByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.NotFound(constant.ResourceRegion)
			}
			return nil, err
		}

		return serializer.NewRegion(region, true), nil
	})
	if err != nil {
		rc.respondError(ctx, "region.show", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, result)
}

type regionRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

func (rc RegionController) Store(ctx *gin.Context) {
	var body regionRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseValidation(ctx, util.GenerateFieldErrors(err))
		return
	}

	var region *model.Region
	err := rc.app.Runner.RunMutation(ctx, "region.create", func(tx *gorm.DB) error {
		taken, err := rc.app.Repository.Region.NameTaken(ctx, tx, body.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return apperror.ValidationField("name", "The name has already been taken.")
		}

		region, err = rc.app.Repository.Region.Create(ctx, tx, &model.Region{Name: body.Name})
		if err != nil {
			// Concurrent creation races past the pre-check and lands on
			// the unique index instead.
			if transaction.IsUniqueViolation(err) {
				return apperror.ValidationField("name", "The name has already been taken.")
			}
			return err
		}

		return nil
	})
	if err != nil {
		rc.respondError(ctx, "region.create", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusCreated, serializer.NewRegion(region, false))
}

func (rc RegionController) Update(ctx *gin.Context) {
	id, ok := rc.parseID(ctx, "regionId", constant.ResourceRegion)
	if !ok {
		return
	}

	var body regionRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseValidation(ctx, util.GenerateFieldErrors(err))
		return
	}

	var region *model.Region
	err := rc.app.Runner.RunMutation(ctx, "region.update", func(tx *gorm.DB) error {
		found, err := rc.getRegion(ctx, tx, id)
		if err != nil {
			return err
		}

		// Keeping the exact current name is valid; only other regions
		// count for uniqueness.
		taken, err := rc.app.Repository.Region.NameTaken(ctx, tx, body.Name, id)
		if err != nil {
			return err
		}
		if taken {
			return apperror.ValidationField("name", "The name has already been taken.")
		}

		found.Name = body.Name
		if err := rc.app.Repository.Region.Update(ctx, tx, found); err != nil {
			if transaction.IsUniqueViolation(err) {
				return apperror.ValidationField("name", "The name has already been taken.")
			}
			return err
		}

		region = found
		return nil
	})
	if err != nil {
		rc.respondError(ctx, "region.update", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, serializer.NewRegion(region, false))
}

type regionDestroyRequest struct {
	ForceDelete bool `json:"force_delete"`
}

func (rc RegionController) Destroy(ctx *gin.Context) {
	id, ok := rc.parseID(ctx, "regionId", constant.ResourceRegion)
	if !ok {
		return
	}

	force := ctx.Query("force_delete") == "true"
	if !force {
		var body regionDestroyRequest
		// An empty body is fine; the flag just defaults to false.
		if err := ctx.ShouldBindJSON(&body); err == nil {
			force = body.ForceDelete
		}
	}

	err := rc.app.Runner.RunMutation(ctx, "region.delete", func(tx *gorm.DB) error {
		if _, err := rc.getRegion(ctx, tx, id); err != nil {
			return err
		}

		count, err := rc.app.Repository.Region.CountProjects(ctx, tx, id)
		if err != nil {
			return err
		}

		if count > 0 {
			if !force {
				return apperror.BusinessRule(ErrRegionHasProjects)
			}
			return rc.app.Repository.Region.DeleteCascade(ctx, tx, id)
		}

		return rc.app.Repository.Region.Delete(ctx, tx, id)
	})
	if err != nil {
		rc.respondError(ctx, "region.delete", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, gin.H{"message": "Region deleted successfully"})
}

// getRegion loads the bare region row inside the current transaction,
// translating a missing row into a not-found error.
func (rc RegionController) getRegion(ctx context.Context, tx *gorm.DB, id uint) (*model.Region, error) {
	var region model.Region
	if err := tx.WithContext(ctx).First(&region, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(constant.ResourceRegion)
		}
		return nil, err
	}

	return &region, nil
}
