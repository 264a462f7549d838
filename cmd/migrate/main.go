package main

import (
	"github.com/sovanrith/geoboard/internal/config"
	"github.com/sovanrith/geoboard/internal/database"
	"github.com/sovanrith/geoboard/internal/env"
	"github.com/sovanrith/geoboard/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	migrateErr := db.AutoMigrate(&model.Region{}, &model.Project{}, &model.Pin{})
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}
}
