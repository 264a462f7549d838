package repository

import (
	"context"

	constant "github.com/sovanrith/geoboard/internal/constant"
	"github.com/sovanrith/geoboard/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	*baseRepository
}

func (pr ProjectRepository) ListByRegion(ctx context.Context, tx *gorm.DB, regionID uint) ([]model.Project, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var projects []model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Preload("Pins").
		Where("region_id = ?", regionID).
		Order("projects.id").
		Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

func (pr ProjectRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Project, error) {
	pr.logger.Debugf("Get project with id: %d \n", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Preload("Region").
		Preload("Pins").
		First(&project, id).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (pr ProjectRepository) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (pr ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error) {
	pr.logger.Debugf("Create project with data: %v \n", project)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Project{}).Create(project).Error; err != nil {
		return project, err
	}

	return project, nil
}

// Update writes only the given columns, so absent update fields stay
// untouched.
func (pr ProjectRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]any) error {
	pr.logger.Debugf("Update project %d with data: %v \n", id, updates)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// Delete removes the project; its pins go with it through the store-level
// foreign key cascade.
func (pr ProjectRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	pr.logger.Debugf("Delete project %d \n", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Delete(&model.Project{}, id).Error
}
