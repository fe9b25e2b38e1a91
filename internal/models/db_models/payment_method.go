package db_models

import "github.com/google/uuid"

// PaymentMethod is a country-scoped offline payment option. RequiresProof
// drives whether subscription requests must attach an uploaded proof file.
type PaymentMethod struct {
	BaseModel
	Name      string    `gorm:"size:100;not null"`
	NameEn    string    `gorm:"size:100;not null"`
	Code      string    `gorm:"size:50;uniqueIndex;not null"`
	Icon      string    `gorm:"size:50"`
	CountryID uuid.UUID `gorm:"index;not null"`

	RequiresProof  bool `gorm:"default:false"`
	Instructions   string
	InstructionsEn string

	// Bank transfer details.
	AccountName   string `gorm:"size:100"`
	AccountNumber string `gorm:"size:50"`
	BankName      string `gorm:"size:100"`
	IBAN          string `gorm:"size:50"`
	SwiftCode     string `gorm:"size:20"`

	IsActive  bool `gorm:"default:true"`
	SortOrder int  `gorm:"default:0"`

	Country Country `gorm:"foreignKey:CountryID"`
}
