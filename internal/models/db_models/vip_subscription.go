package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// VIPSubscription links a user to a package. Invariant: IsActive is only
// ever true while PaymentStatus is "completed".
type VIPSubscription struct {
	BaseModel
	UserID    uuid.UUID `gorm:"index;not null"`
	PackageID uuid.UUID `gorm:"index;not null"`

	StartDate int64 `gorm:"not null"`
	EndDate   int64 `gorm:"not null"`

	PaymentStatus PaymentStatus `gorm:"size:20;index;default:pending"`
	PaymentMethod string        `gorm:"size:50"`

	// Proof blob key, transfer reference/date and the submitted customer
	// fields, as one free-form record.
	PaymentDetails datatypes.JSON `gorm:"default:'{}'"`

	IsActive bool `gorm:"default:false"`

	ProcessedAt *int64
	ProcessedBy *uuid.UUID
	AdminNotes  string

	User    User       `gorm:"foreignKey:UserID"`
	Package VIPPackage `gorm:"foreignKey:PackageID"`
}
