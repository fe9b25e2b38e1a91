package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"adsouq/internal/models/db_models"
)

// AdFilter narrows public searches. Zero values mean "no constraint".
type AdFilter struct {
	Query      string
	CategoryID string
	CountryID  string
	StateID    string
	CityID     string
	Page       int
	PageSize   int
}

// AdModerationFilter narrows the admin listing by moderation state:
// "pending", "approved", "featured" or "all".
type AdModerationFilter struct {
	Status   string
	Page     int
	PageSize int
}

type AdRepository interface {
	Create(ctx context.Context, ad *db_models.Ad) (uuid.UUID, error)
	Save(ctx context.Context, ad *db_models.Ad) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id string) (*db_models.Ad, error)
	IncrementViews(ctx context.Context, id string) (*db_models.Ad, error)

	Search(ctx context.Context, filter AdFilter) ([]db_models.Ad, int64, error)
	ListRecent(ctx context.Context, limit int) ([]db_models.Ad, error)
	ListFeatured(ctx context.Context, limit int) ([]db_models.Ad, error)
	ListRelated(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]db_models.Ad, error)
	ListByCategory(ctx context.Context, categoryID string) ([]db_models.Ad, error)
	ListForModeration(ctx context.Context, filter AdModerationFilter) ([]db_models.Ad, int64, error)

	CountAll(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
	CountFeatured(ctx context.Context) (int64, error)
}

type adRepository struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) AdRepository {
	return &adRepository{db: db}
}

// visible scopes queries to publicly listable ads.
func visible(db *gorm.DB) *gorm.DB {
	return db.Where("is_approved = ? AND is_active = ?", true, true)
}

func (r *adRepository) Create(ctx context.Context, ad *db_models.Ad) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(ad).Error; err != nil {
		return uuid.Nil, err
	}
	return ad.ID, nil
}

func (r *adRepository) Save(ctx context.Context, ad *db_models.Ad) error {
	return r.db.WithContext(ctx).Save(ad).Error
}

func (r *adRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Ad{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *adRepository) FindByID(ctx context.Context, id string) (*db_models.Ad, error) {
	var ad db_models.Ad
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Country").
		First(&ad, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ad, nil
}

// IncrementViews is a plain read-modify-write; concurrent detail views may
// lose counts.
func (r *adRepository) IncrementViews(ctx context.Context, id string) (*db_models.Ad, error) {
	ad, err := r.FindByID(ctx, id)
	if err != nil || ad == nil {
		return ad, err
	}

	ad.ViewsCount++
	if err := r.db.WithContext(ctx).Model(ad).Update("views_count", ad.ViewsCount).Error; err != nil {
		return nil, err
	}
	return ad, nil
}

func (r *adRepository) Search(ctx context.Context, filter AdFilter) ([]db_models.Ad, int64, error) {
	query := visible(r.db.WithContext(ctx).Model(&db_models.Ad{}))

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.CountryID != "" {
		query = query.Where("country_id = ?", filter.CountryID)
	}
	if filter.StateID != "" {
		query = query.Where("state_id = ?", filter.StateID)
	}
	if filter.CityID != "" {
		query = query.Where("city_id = ?", filter.CityID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ads []db_models.Ad
	offset := (filter.Page - 1) * filter.PageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&ads).Error
	if err != nil {
		return nil, 0, err
	}
	return ads, total, nil
}

func (r *adRepository) ListRecent(ctx context.Context, limit int) ([]db_models.Ad, error) {
	var ads []db_models.Ad
	err := visible(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Limit(limit).
		Find(&ads).Error
	if err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *adRepository) ListFeatured(ctx context.Context, limit int) ([]db_models.Ad, error) {
	var ads []db_models.Ad
	err := visible(r.db.WithContext(ctx)).
		Where("is_featured = ?", true).
		Limit(limit).
		Find(&ads).Error
	if err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *adRepository) ListRelated(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]db_models.Ad, error) {
	var ads []db_models.Ad
	err := visible(r.db.WithContext(ctx)).
		Where("category_id = ? AND id <> ?", categoryID, excludeID).
		Limit(limit).
		Find(&ads).Error
	if err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *adRepository) ListByCategory(ctx context.Context, categoryID string) ([]db_models.Ad, error) {
	var ads []db_models.Ad
	err := visible(r.db.WithContext(ctx)).
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&ads).Error
	if err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *adRepository) ListForModeration(ctx context.Context, filter AdModerationFilter) ([]db_models.Ad, int64, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Ad{})

	switch filter.Status {
	case "pending":
		query = query.Where("is_approved = ?", false)
	case "approved":
		query = query.Where("is_approved = ?", true)
	case "featured":
		query = query.Where("is_featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ads []db_models.Ad
	offset := (filter.Page - 1) * filter.PageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&ads).Error
	if err != nil {
		return nil, 0, err
	}
	return ads, total, nil
}

func (r *adRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Ad{}).Count(&count).Error
	return count, err
}

func (r *adRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Ad{}).
		Where("is_approved = ?", false).
		Count(&count).Error
	return count, err
}

func (r *adRepository) CountFeatured(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Ad{}).
		Where("is_featured = ?", true).
		Count(&count).Error
	return count, err
}
