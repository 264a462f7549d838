package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/sovanrith/geoboard/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	db.Exec("PRAGMA foreign_keys = ON")

	if err := db.AutoMigrate(&model.Region{}, &model.Project{}, &model.Pin{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewRepository(db, zap.NewNop().Sugar())
}

func seedRegionTree(t *testing.T, repo *Repository) (*model.Region, *model.Project, *model.Pin) {
	t.Helper()
	ctx := context.Background()

	region, err := repo.Region.Create(ctx, nil, &model.Region{Name: "North America"})
	if err != nil {
		t.Fatalf("failed to create region: %v", err)
	}

	project, err := repo.Project.Create(ctx, nil, &model.Project{
		Name:     "Manhattan",
		GeoJSON:  []byte(`{"type":"Polygon"}`),
		RegionID: region.ID,
	})
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	pin, err := repo.Pin.Create(ctx, nil, &model.Pin{
		Latitude:  40.7128,
		Longitude: -74.0060,
		ProjectID: project.ID,
	})
	if err != nil {
		t.Fatalf("failed to create pin: %v", err)
	}

	return region, project, pin
}

func TestNameTaken(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	region, _, _ := seedRegionTree(t, repo)

	taken, err := repo.Region.NameTaken(ctx, nil, "North America", 0)
	if err != nil {
		t.Fatalf("NameTaken failed: %v", err)
	}
	if !taken {
		t.Error("existing name should be taken")
	}

	// The entity's own name stays valid on update.
	taken, err = repo.Region.NameTaken(ctx, nil, "North America", region.ID)
	if err != nil {
		t.Fatalf("NameTaken failed: %v", err)
	}
	if taken {
		t.Error("own name must be excluded from the uniqueness check")
	}

	taken, err = repo.Region.NameTaken(ctx, nil, "Europe", 0)
	if err != nil {
		t.Fatalf("NameTaken failed: %v", err)
	}
	if taken {
		t.Error("unused name should not be taken")
	}
}

func TestNameUniquenessIsCaseSensitive(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seedRegionTree(t, repo)

	taken, err := repo.Region.NameTaken(ctx, nil, "north america", 0)
	if err != nil {
		t.Fatalf("NameTaken failed: %v", err)
	}
	if taken {
		t.Error("uniqueness is case-sensitive exact match")
	}
}

func TestDeleteCascadeRemovesDescendants(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	region, project, pin := seedRegionTree(t, repo)

	if err := repo.Region.DeleteCascade(ctx, nil, region.ID); err != nil {
		t.Fatalf("DeleteCascade failed: %v", err)
	}

	if _, err := repo.Region.GetByID(ctx, nil, region.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("region should be gone, got %v", err)
	}
	if _, err := repo.Project.GetByID(ctx, nil, project.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("project should be gone, got %v", err)
	}
	if _, err := repo.Pin.GetByID(ctx, nil, pin.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("pin should be gone, got %v", err)
	}
}

func TestCountProjects(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	region, _, _ := seedRegionTree(t, repo)

	count, err := repo.Region.CountProjects(ctx, nil, region.ID)
	if err != nil {
		t.Fatalf("CountProjects failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 project, got %d", count)
	}

	empty, err := repo.Region.Create(ctx, nil, &model.Region{Name: "Antarctica"})
	if err != nil {
		t.Fatalf("failed to create region: %v", err)
	}

	count, err = repo.Region.CountProjects(ctx, nil, empty.ID)
	if err != nil {
		t.Fatalf("CountProjects failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 projects, got %d", count)
	}
}

func TestProjectDeleteCascadesPinsAtStoreLevel(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, project, pin := seedRegionTree(t, repo)

	if err := repo.Project.Delete(ctx, nil, project.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := repo.Pin.GetByID(ctx, nil, pin.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("pin should be removed by the foreign key cascade, got %v", err)
	}
}
