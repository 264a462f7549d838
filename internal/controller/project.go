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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectController struct {
	*baseController
}

// IndexByRegion lists a region's projects (with pins). 404 when the region
// itself does not resolve.
func (pc ProjectController) IndexByRegion(ctx *gin.Context) {
	regionID, ok := pc.parseID(ctx, "regionId", constant.ResourceRegion)
	if !ok {
		return
	}

	key := fmt.Sprintf("regions:%d:projects", regionID)
	result, err := pc.app.Runner.RunRead(ctx, key, func(db *gorm.DB) (any, error) {
		exists, err := pc.app.Repository.Region.Exists(ctx, db, regionID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperror.NotFound(constant.ResourceRegion)
		}

		projects, err := pc.app.Repository.Project.ListByRegion(ctx, db, regionID)
		if err != nil {
			return nil, err
		}

		return serializer.NewProjects(projects), nil
	})
	if err != nil {
		pc.respondError(ctx, "project.index", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, result)
}

func (pc ProjectController) Show(ctx *gin.Context) {
	id, ok := pc.parseID(ctx, "projectId", constant.ResourceProject)
	if !ok {
		return
	}

	key := fmt.Sprintf("projects:show:%d", id)
	result, err := pc.app.Runner.RunRead(ctx, key, func(db *gorm.DB) (any, error) {
		project, err := pc.app.Repository.Project.GetByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.NotFound(constant.ResourceProject)
			}
			return nil, err
		}

		return serializer.NewProject(project, true, true), nil
	})
	if err != nil {
		pc.respondError(ctx, "project.show", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, result)
}

type projectCreateRequest struct {
	Name    string         `json:"name" binding:"required,max=255"`
	GeoJSON datatypes.JSON `json:"geo_json" binding:"required"`
}

func (pc ProjectController) Store(ctx *gin.Context) {
	regionID, ok := pc.parseID(ctx, "regionId", constant.ResourceRegion)
	if !ok {
		return
	}

	var body projectCreateRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseValidation(ctx, util.GenerateFieldErrors(err))
		return
	}

	var project *model.Project
	err := pc.app.Runner.RunMutation(ctx, "project.create", func(tx *gorm.DB) error {
		exists, err := pc.app.Repository.Region.Exists(ctx, tx, regionID)
		if err != nil {
			return err
		}
		if !exists {
			return apperror.NotFound(constant.ResourceRegion)
		}

		project, err = pc.app.Repository.Project.Create(ctx, tx, &model.Project{
			Name:     body.Name,
			GeoJSON:  body.GeoJSON,
			RegionID: regionID,
		})
		return err
	})
	if err != nil {
		pc.respondError(ctx, "project.create", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusCreated, serializer.NewProject(project, false, false))
}

type projectUpdateRequest struct {
	Name    *string         `json:"name" binding:"omitempty,max=255"`
	GeoJSON *datatypes.JSON `json:"geo_json"`
}

// Update applies partial changes: absent fields are left unchanged.
func (pc ProjectController) Update(ctx *gin.Context) {
	id, ok := pc.parseID(ctx, "projectId", constant.ResourceProject)
	if !ok {
		return
	}

	var body projectUpdateRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseValidation(ctx, util.GenerateFieldErrors(err))
		return
	}

	var project model.Project
	err := pc.app.Runner.RunMutation(ctx, "project.update", func(tx *gorm.DB) error {
		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound(constant.ResourceProject)
			}
			return err
		}

		updates := map[string]any{}
		if body.Name != nil {
			updates["name"] = *body.Name
			project.Name = *body.Name
		}
		if body.GeoJSON != nil {
			updates["geo_json"] = *body.GeoJSON
			project.GeoJSON = *body.GeoJSON
		}

		if len(updates) == 0 {
			return nil
		}

		return pc.app.Repository.Project.Update(ctx, tx, id, updates)
	})
	if err != nil {
		pc.respondError(ctx, "project.update", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, serializer.NewProject(&project, false, false))
}

// Destroy deletes the project unconditionally; its pins disappear through
// the store-level cascade rule.
func (pc ProjectController) Destroy(ctx *gin.Context) {
	id, ok := pc.parseID(ctx, "projectId", constant.ResourceProject)
	if !ok {
		return
	}

	err := pc.app.Runner.RunMutation(ctx, "project.delete", func(tx *gorm.DB) error {
		exists, err := pc.app.Repository.Project.Exists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperror.NotFound(constant.ResourceProject)
		}

		return pc.app.Repository.Project.Delete(ctx, tx, id)
	})
	if err != nil {
		pc.respondError(ctx, "project.delete", err)
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
