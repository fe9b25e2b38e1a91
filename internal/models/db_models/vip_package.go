package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VIPPackage is a priced merchant tier scoped to a country. A package only
// surfaces payment methods through its association table.
type VIPPackage struct {
	BaseModel
	Name        string `gorm:"size:100;not null"`
	NameEn      string `gorm:"size:100"`
	Description string

	Price        float64   `gorm:"type:numeric(10,2);not null"`
	Currency     string    `gorm:"size:3;default:SAR"`
	DurationDays int       `gorm:"not null"`
	CountryID    uuid.UUID `gorm:"index;not null"`

	FeaturedAdsCount  int    `gorm:"default:0"`
	CustomBadge       string `gorm:"size:50"`
	PrioritySupport   bool   `gorm:"default:false"`
	AdvancedAnalytics bool   `gorm:"default:false"`
	BoostInSearch     bool   `gorm:"default:false"`

	Features datatypes.JSON `gorm:"default:'[]'"`
	IsActive bool           `gorm:"default:true"`

	Country        Country         `gorm:"foreignKey:CountryID"`
	PaymentMethods []PaymentMethod `gorm:"many2many:vip_package_payment_methods"`
}
