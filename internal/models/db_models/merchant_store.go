package db_models

import "github.com/google/uuid"

// MerchantStore is the branded listing page of a VIP user. One per owner,
// created lazily on first access or on subscription approval.
type MerchantStore struct {
	BaseModel
	OwnerID     uuid.UUID `gorm:"uniqueIndex;not null"`
	Name        string    `gorm:"size:100;not null"`
	Description string
	LogoURL     string `gorm:"size:255"`
	BannerURL   string `gorm:"size:255"`

	Ads []Ad `gorm:"foreignKey:StoreID"`
}
