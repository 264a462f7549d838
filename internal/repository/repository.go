package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

type Repository struct {
	// DB can be used for transaction. The transaction runner begins a tx
	// and passes it into repository functions through the operation
	// closure.
	DB      *gorm.DB
	Region  *RegionRepository
	Project *ProjectRepository
	Pin     *PinRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger) *baseRepository {
	return &baseRepository{db: db, logger: logger}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger) *Repository {
	br := newBaseRepository(db, logger)

	return &Repository{
		DB:      db,
		Region:  &RegionRepository{baseRepository: br},
		Project: &ProjectRepository{baseRepository: br},
		Pin:     &PinRepository{baseRepository: br},
	}
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
