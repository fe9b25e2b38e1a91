package db_models

import "github.com/google/uuid"

type City struct {
	BaseModel
	Name    string    `gorm:"size:100;not null"`
	NameEn  string    `gorm:"size:100"`
	StateID uuid.UUID `gorm:"index;not null"`

	IsActive  bool `gorm:"default:true"`
	SortOrder int  `gorm:"default:0"`

	State State `gorm:"foreignKey:StateID"`
}
