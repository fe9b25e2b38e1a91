package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"adsouq/internal/models/db_models"
)

type SubscriptionFilter struct {
	Status   string // "pending", "completed", "failed" or "all"
	Page     int
	PageSize int
}

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *db_models.VIPSubscription) error
	Save(ctx context.Context, sub *db_models.VIPSubscription) error
	FindByID(ctx context.Context, id string) (*db_models.VIPSubscription, error)
	List(ctx context.Context, filter SubscriptionFilter) ([]db_models.VIPSubscription, int64, error)
	ListRecent(ctx context.Context, limit int) ([]db_models.VIPSubscription, error)
	FindLatestCompletedByUser(ctx context.Context, userID string) (*db_models.VIPSubscription, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status db_models.PaymentStatus) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *db_models.VIPSubscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepository) Save(ctx context.Context, sub *db_models.VIPSubscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id string) (*db_models.VIPSubscription, error) {
	var sub db_models.VIPSubscription
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Package").
		First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) List(ctx context.Context, filter SubscriptionFilter) ([]db_models.VIPSubscription, int64, error) {
	query := r.db.WithContext(ctx).Model(&db_models.VIPSubscription{})
	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("payment_status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []db_models.VIPSubscription
	offset := (filter.Page - 1) * filter.PageSize
	err := query.
		Preload("User").
		Preload("Package").
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *subscriptionRepository) ListRecent(ctx context.Context, limit int) ([]db_models.VIPSubscription, error) {
	var subs []db_models.VIPSubscription
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Package").
		Order("created_at DESC").
		Limit(limit).
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepository) FindLatestCompletedByUser(ctx context.Context, userID string) (*db_models.VIPSubscription, error) {
	var sub db_models.VIPSubscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND payment_status = ?", userID, db_models.PaymentStatusCompleted).
		Order("end_date DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.VIPSubscription{}).Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) CountByStatus(ctx context.Context, status db_models.PaymentStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.VIPSubscription{}).
		Where("payment_status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.VIPSubscription{}).
		Where("payment_status = ? AND is_active = ?", db_models.PaymentStatusCompleted, true).
		Count(&count).Error
	return count, err
}
