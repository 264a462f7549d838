package repository

import (
	"context"

	constant "github.com/sovanrith/geoboard/internal/constant"
	"github.com/sovanrith/geoboard/internal/model"
	"gorm.io/gorm"
)

type RegionRepository struct {
	*baseRepository
}

func (rr RegionRepository) List(ctx context.Context, tx *gorm.DB) ([]model.Region, error) {
	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var regions []model.Region
	if err := db.WithContext(ctx).Model(&model.Region{}).
		Preload("Projects.Pins").
		Order("regions.id").
		Find(&regions).Error; err != nil {
		return nil, err
	}

	return regions, nil
}

func (rr RegionRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Region, error) {
	rr.logger.Debugf("Get region with id: %d \n", id)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var region model.Region
	if err := db.WithContext(ctx).Model(&model.Region{}).
		Preload("Projects.Pins").
		First(&region, id).Error; err != nil {
		return nil, err
	}

	return &region, nil
}

// Exists checks the id without loading relations.
func (rr RegionRepository) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Region{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// NameTaken reports whether another region already uses name. excludeID
// keeps an update from colliding with the entity's own current name; pass 0
// on create.
func (rr RegionRepository) NameTaken(ctx context.Context, tx *gorm.DB, name string, excludeID uint) (bool, error) {
	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Region{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (rr RegionRepository) Create(ctx context.Context, tx *gorm.DB, region *model.Region) (*model.Region, error) {
	rr.logger.Debugf("Create region with data: %v \n", region)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Region{}).Create(region).Error; err != nil {
		return region, err
	}

	return region, nil
}

func (rr RegionRepository) Update(ctx context.Context, tx *gorm.DB, region *model.Region) error {
	rr.logger.Debugf("Update region %d \n", region.ID)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Region{}).
		Where("id = ?", region.ID).
		Update("name", region.Name).Error
}

func (rr RegionRepository) CountProjects(ctx context.Context, tx *gorm.DB, regionID uint) (int64, error) {
	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Where("region_id = ?", regionID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (rr RegionRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	rr.logger.Debugf("Delete region %d \n", id)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Delete(&model.Region{}, id).Error
}

// DeleteCascade removes all pins under the region's projects, then the
// projects, then the region itself. Callers run it inside one transaction so
// a partial cascade never survives.
func (rr RegionRepository) DeleteCascade(ctx context.Context, tx *gorm.DB, id uint) error {
	rr.logger.Debugf("Force delete region %d with all descendants \n", id)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).
		Where("project_id IN (?)",
			db.Model(&model.Project{}).Select("id").Where("region_id = ?", id),
		).
		Delete(&model.Pin{}).Error; err != nil {
		return err
	}

	if err := db.WithContext(ctx).
		Where("region_id = ?", id).
		Delete(&model.Project{}).Error; err != nil {
		return err
	}

	return db.WithContext(ctx).Delete(&model.Region{}, id).Error
}
