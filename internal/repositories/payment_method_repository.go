package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"adsouq/internal/models/db_models"
)

type PaymentMethodRepository interface {
	Create(ctx context.Context, method *db_models.PaymentMethod) error
	Save(ctx context.Context, method *db_models.PaymentMethod) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id string) (*db_models.PaymentMethod, error)
	// FindActiveByIDsAndCountry resolves a requested id set against one
	// country; callers compare lengths to detect mismatches.
	FindActiveByIDsAndCountry(ctx context.Context, ids []string, countryID string) ([]db_models.PaymentMethod, error)
	ListByCountry(ctx context.Context, countryID string, activeOnly bool) ([]db_models.PaymentMethod, error)
	ListAll(ctx context.Context) ([]db_models.PaymentMethod, error)
}

type paymentMethodRepository struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

func (r *paymentMethodRepository) Create(ctx context.Context, method *db_models.PaymentMethod) error {
	return r.db.WithContext(ctx).Create(method).Error
}

func (r *paymentMethodRepository) Save(ctx context.Context, method *db_models.PaymentMethod) error {
	return r.db.WithContext(ctx).Save(method).Error
}

func (r *paymentMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.PaymentMethod{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *paymentMethodRepository) FindByID(ctx context.Context, id string) (*db_models.PaymentMethod, error) {
	var method db_models.PaymentMethod
	err := r.db.WithContext(ctx).First(&method, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}

func (r *paymentMethodRepository) FindActiveByIDsAndCountry(ctx context.Context, ids []string, countryID string) ([]db_models.PaymentMethod, error) {
	var methods []db_models.PaymentMethod
	err := r.db.WithContext(ctx).
		Where("id IN ? AND country_id = ? AND is_active = ?", ids, countryID, true).
		Find(&methods).Error
	if err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *paymentMethodRepository) ListByCountry(ctx context.Context, countryID string, activeOnly bool) ([]db_models.PaymentMethod, error) {
	query := r.db.WithContext(ctx).
		Where("country_id = ?", countryID).
		Order("sort_order ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var methods []db_models.PaymentMethod
	if err := query.Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *paymentMethodRepository) ListAll(ctx context.Context) ([]db_models.PaymentMethod, error) {
	var methods []db_models.PaymentMethod
	err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&methods).Error
	if err != nil {
		return nil, err
	}
	return methods, nil
}
