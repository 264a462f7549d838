package model

type Region struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`

	Projects []Project `gorm:"constraint:OnDelete:CASCADE" json:"projects"`
}

func (r Region) TableName() string {
	return "regions"
}
