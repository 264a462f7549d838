package serializer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sovanrith/geoboard/internal/model"
)

func TestNewPinFormatsCoordinates(t *testing.T) {
	pin := model.Pin{
		BaseModel: model.BaseModel{ID: 1},
		Latitude:  40.7128,
		Longitude: -74.0060,
		ProjectID: 2,
	}

	out := NewPin(&pin, false)

	if out.Latitude != "40.71280000" {
		t.Errorf("latitude = %q, want %q", out.Latitude, "40.71280000")
	}
	if out.Longitude != "-74.00600000" {
		t.Errorf("longitude = %q, want %q", out.Longitude, "-74.00600000")
	}
}

func TestUnloadedRelationsAreOmitted(t *testing.T) {
	pin := model.Pin{
		BaseModel: model.BaseModel{ID: 1},
		Latitude:  1,
		Longitude: 2,
		ProjectID: 3,
	}

	raw, err := json.Marshal(NewPin(&pin, true))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if strings.Contains(string(raw), `"project"`) {
		t.Errorf("unloaded project relation must be absent, got %s", raw)
	}
}

func TestLoadedRelationsAreIncluded(t *testing.T) {
	pin := model.Pin{
		BaseModel: model.BaseModel{ID: 1},
		Latitude:  1,
		Longitude: 2,
		ProjectID: 3,
		Project: model.Project{
			BaseModel: model.BaseModel{ID: 3},
			Name:      "Harbor",
			RegionID:  9,
		},
	}

	out := NewPin(&pin, true)
	if out.Project == nil {
		t.Fatal("loaded project relation must be included")
	}
	if out.Project.Name != "Harbor" {
		t.Errorf("project name = %q, want %q", out.Project.Name, "Harbor")
	}
}

func TestNewRegionNestsProjectsAndPins(t *testing.T) {
	region := model.Region{
		BaseModel: model.BaseModel{ID: 1},
		Name:      "North America",
		Projects: []model.Project{
			{
				BaseModel: model.BaseModel{ID: 2},
				Name:      "Manhattan",
				RegionID:  1,
				Pins: []model.Pin{
					{BaseModel: model.BaseModel{ID: 3}, Latitude: 40.7128, Longitude: -74.0060, ProjectID: 2},
				},
			},
		},
	}

	out := NewRegion(&region, true)

	if len(out.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(out.Projects))
	}
	if len(out.Projects[0].Pins) != 1 {
		t.Fatalf("expected 1 pin, got %d", len(out.Projects[0].Pins))
	}
	if out.Projects[0].Pins[0].Latitude != "40.71280000" {
		t.Errorf("nested pin latitude = %q", out.Projects[0].Pins[0].Latitude)
	}
}
