package model

type Pin struct {
	BaseModel
	Latitude  float64 `gorm:"type:decimal(10,8);not null" json:"latitude"`
	Longitude float64 `gorm:"type:decimal(11,8);not null" json:"longitude"`

	ProjectID uint    `gorm:"not null;index" json:"project_id"`
	Project   Project `json:"project"`
}

func (p Pin) TableName() string {
	return "pins"
}
