package utils

import (
	"errors"
	"fmt"
)

var (
	ErrDatabaseError   = errors.New("database error")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrDuplicateRecord    = errors.New("duplicate record")

	ErrAdNotFound            = errors.New("ad not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCountryNotFound       = errors.New("country not found")
	ErrStateNotFound         = errors.New("state not found")
	ErrCityNotFound          = errors.New("city not found")
	ErrPackageNotFound       = errors.New("vip package not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrStoreNotFound         = errors.New("store not found")
	ErrAdSenseNotFound       = errors.New("adsense placement not found")
	ErrSettingNotFound       = errors.New("setting not found")

	ErrProofFileMissing        = errors.New("payment proof file missing")
	ErrUnsupportedFileType     = errors.New("unsupported file type")
	ErrTransferDetailsRequired = errors.New("transfer reference and date required")
	ErrInvalidPrice            = errors.New("invalid price")
	ErrNoPaymentMethods        = errors.New("at least one payment method required")
	ErrPaymentMethodMismatch   = errors.New("payment method not valid for country")

	ErrVIPRequired = errors.New("vip membership required")
	ErrVIPExpired  = errors.New("vip membership expired")
)

// FieldError reports a validation failure on a single form field with a
// user-facing localized message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
