package repository

import (
	"context"

	constant "github.com/sovanrith/geoboard/internal/constant"
	"github.com/sovanrith/geoboard/internal/model"
	"gorm.io/gorm"
)

type PinRepository struct {
	*baseRepository
}

func (pr PinRepository) ListByProject(ctx context.Context, tx *gorm.DB, projectID uint) ([]model.Pin, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var pins []model.Pin
	if err := db.WithContext(ctx).Model(&model.Pin{}).
		Where("project_id = ?", projectID).
		Order("pins.id").
		Find(&pins).Error; err != nil {
		return nil, err
	}

	return pins, nil
}

func (pr PinRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Pin, error) {
	pr.logger.Debugf("Get pin with id: %d \n", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var pin model.Pin
	if err := db.WithContext(ctx).Model(&model.Pin{}).
		Preload("Project").
		First(&pin, id).Error; err != nil {
		return nil, err
	}

	return &pin, nil
}

func (pr PinRepository) Create(ctx context.Context, tx *gorm.DB, pin *model.Pin) (*model.Pin, error) {
	pr.logger.Debugf("Create pin with data: %v \n", pin)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Pin{}).Create(pin).Error; err != nil {
		return pin, err
	}

	return pin, nil
}

// Update replaces both coordinates; pins have no partial update.
func (pr PinRepository) Update(ctx context.Context, tx *gorm.DB, id uint, latitude, longitude float64) error {
	pr.logger.Debugf("Update pin %d to (%f, %f) \n", id, latitude, longitude)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Pin{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"latitude":  latitude,
			"longitude": longitude,
		}).Error
}

func (pr PinRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	pr.logger.Debugf("Delete pin %d \n", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Delete(&model.Pin{}, id).Error
}
