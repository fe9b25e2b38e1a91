package db_models

import "github.com/google/uuid"

type State struct {
	BaseModel
	Name      string    `gorm:"size:100;not null"`
	NameEn    string    `gorm:"size:100"`
	CountryID uuid.UUID `gorm:"index;not null"`

	IsActive  bool `gorm:"default:true"`
	SortOrder int  `gorm:"default:0"`

	Cities []City `gorm:"foreignKey:StateID"`
}
