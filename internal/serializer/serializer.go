// Package serializer maps stored entities to their client-facing shapes.
// Coordinates go out as fixed-precision decimal strings so clients never see
// float drift; relations appear only when they were loaded.
package serializer

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sovanrith/geoboard/internal/model"
	"github.com/sovanrith/geoboard/internal/util"
)

type RegionResource struct {
	ID        uint              `json:"id"`
	Name      string            `json:"name"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Projects  []ProjectResource `json:"projects,omitempty"`
}

type ProjectResource struct {
	ID        uint            `json:"id"`
	RegionID  uint            `json:"region_id"`
	Name      string          `json:"name"`
	GeoJSON   datatypes.JSON  `json:"geo_json"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Region    *RegionResource `json:"region,omitempty"`
	Pins      []PinResource   `json:"pins,omitempty"`
}

type PinResource struct {
	ID        uint             `json:"id"`
	ProjectID uint             `json:"project_id"`
	Latitude  string           `json:"latitude"`
	Longitude string           `json:"longitude"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Project   *ProjectResource `json:"project,omitempty"`
}

func NewRegion(region *model.Region, withProjects bool) RegionResource {
	out := RegionResource{
		ID:        region.ID,
		Name:      region.Name,
		CreatedAt: region.CreatedAt,
		UpdatedAt: region.UpdatedAt,
	}

	if withProjects {
		out.Projects = NewProjects(region.Projects)
	}

	return out
}

func NewRegions(regions []model.Region) []RegionResource {
	out := make([]RegionResource, 0, len(regions))
	for i := range regions {
		out = append(out, NewRegion(&regions[i], true))
	}

	return out
}

func NewProject(project *model.Project, withRegion, withPins bool) ProjectResource {
	out := ProjectResource{
		ID:        project.ID,
		RegionID:  project.RegionID,
		Name:      project.Name,
		GeoJSON:   project.GeoJSON,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}

	if withRegion && project.Region.ID != 0 {
		region := NewRegion(&project.Region, false)
		out.Region = &region
	}

	if withPins {
		out.Pins = NewPins(project.Pins)
	}

	return out
}

func NewProjects(projects []model.Project) []ProjectResource {
	out := make([]ProjectResource, 0, len(projects))
	for i := range projects {
		out = append(out, NewProject(&projects[i], false, true))
	}

	return out
}

func NewPin(pin *model.Pin, withProject bool) PinResource {
	out := PinResource{
		ID:        pin.ID,
		ProjectID: pin.ProjectID,
		Latitude:  util.FormatCoordinate(pin.Latitude),
		Longitude: util.FormatCoordinate(pin.Longitude),
		CreatedAt: pin.CreatedAt,
		UpdatedAt: pin.UpdatedAt,
	}

	if withProject && pin.Project.ID != 0 {
		project := NewProject(&pin.Project, false, false)
		out.Project = &project
	}

	return out
}

func NewPins(pins []model.Pin) []PinResource {
	out := make([]PinResource, 0, len(pins))
	for i := range pins {
		out = append(out, NewPin(&pins[i], false))
	}

	return out
}
