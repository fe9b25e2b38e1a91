package db_models

import "github.com/google/uuid"

// Category is a self-referential taxonomy node; top-level categories have a
// nil ParentID.
type Category struct {
	BaseModel
	Name        string `gorm:"size:100;not null"`
	NameEn      string `gorm:"size:100"`
	Description string
	Slug        string     `gorm:"size:50;uniqueIndex"`
	ParentID    *uuid.UUID `gorm:"index"`
	Icon        string     `gorm:"size:50"`
	Color       string     `gorm:"size:7"`

	DisplayOrder int  `gorm:"default:0"`
	IsActive     bool `gorm:"default:true"`

	Children []Category `gorm:"foreignKey:ParentID"`
	Ads      []Ad       `gorm:"foreignKey:CategoryID"`
}
