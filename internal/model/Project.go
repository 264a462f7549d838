package model

import "gorm.io/datatypes"

type Project struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	// Opaque geometry payload. Stored as-is, never validated for geometric
	// correctness.
	GeoJSON datatypes.JSON `gorm:"type:jsonb" json:"geo_json"`

	RegionID uint   `gorm:"not null;index" json:"region_id"`
	Region   Region `json:"region"`

	Pins []Pin `gorm:"constraint:OnDelete:CASCADE" json:"pins"`
}

func (p Project) TableName() string {
	return "projects"
}
