package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Ad struct {
	BaseModel
	Title       string  `gorm:"size:100;not null"`
	Description string  `gorm:"not null"`
	Price       float64 `gorm:"type:numeric(10,2);not null"`
	Currency    string  `gorm:"size:3;default:SAR"`

	// Flat list of blob-store keys.
	Images datatypes.JSON `gorm:"default:'[]'"`

	UserID     uuid.UUID  `gorm:"index;not null"`
	CategoryID uuid.UUID  `gorm:"index;not null"`
	CountryID  uuid.UUID  `gorm:"index;not null"`
	StateID    *uuid.UUID `gorm:"index"`
	CityID     *uuid.UUID `gorm:"index"`
	StoreID    *uuid.UUID `gorm:"index"`

	ContactPhone string `gorm:"size:20"`
	ContactEmail string `gorm:"size:120"`

	IsFeatured bool `gorm:"default:false"`
	IsApproved bool `gorm:"default:false"`
	IsActive   bool `gorm:"default:true"`

	ViewsCount int64 `gorm:"default:0"`

	User     User           `gorm:"foreignKey:UserID"`
	Category Category       `gorm:"foreignKey:CategoryID"`
	Country  Country        `gorm:"foreignKey:CountryID"`
	State    *State         `gorm:"foreignKey:StateID"`
	City     *City          `gorm:"foreignKey:CityID"`
	Store    *MerchantStore `gorm:"foreignKey:StoreID"`
}
