package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"adsouq/internal/models/db_models"
)

// LocationRepository covers the country -> state -> city tree.
type LocationRepository interface {
	CreateCountry(ctx context.Context, country *db_models.Country) error
	DeleteCountry(ctx context.Context, id uuid.UUID) error
	FindCountryByID(ctx context.Context, id string) (*db_models.Country, error)
	FindCountryByCode(ctx context.Context, code string) (*db_models.Country, error)
	ListCountries(ctx context.Context, activeOnly bool) ([]db_models.Country, error)

	CreateState(ctx context.Context, state *db_models.State) error
	DeleteState(ctx context.Context, id uuid.UUID) error
	FindStateByID(ctx context.Context, id string) (*db_models.State, error)
	ListStatesByCountry(ctx context.Context, countryID string) ([]db_models.State, error)

	CreateCity(ctx context.Context, city *db_models.City) error
	DeleteCity(ctx context.Context, id uuid.UUID) error
	FindCityByID(ctx context.Context, id string) (*db_models.City, error)
	ListCitiesByState(ctx context.Context, stateID string) ([]db_models.City, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) CreateCountry(ctx context.Context, country *db_models.Country) error {
	return r.db.WithContext(ctx).Create(country).Error
}

func (r *locationRepository) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Country{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *locationRepository) FindCountryByID(ctx context.Context, id string) (*db_models.Country, error) {
	var country db_models.Country
	err := r.db.WithContext(ctx).First(&country, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *locationRepository) FindCountryByCode(ctx context.Context, code string) (*db_models.Country, error) {
	var country db_models.Country
	err := r.db.WithContext(ctx).First(&country, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *locationRepository) ListCountries(ctx context.Context, activeOnly bool) ([]db_models.Country, error) {
	query := r.db.WithContext(ctx).Order("sort_order ASC, name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var countries []db_models.Country
	if err := query.Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *locationRepository) CreateState(ctx context.Context, state *db_models.State) error {
	return r.db.WithContext(ctx).Create(state).Error
}

func (r *locationRepository) DeleteState(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.State{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *locationRepository) FindStateByID(ctx context.Context, id string) (*db_models.State, error) {
	var state db_models.State
	err := r.db.WithContext(ctx).First(&state, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (r *locationRepository) ListStatesByCountry(ctx context.Context, countryID string) ([]db_models.State, error) {
	var states []db_models.State
	err := r.db.WithContext(ctx).
		Where("country_id = ?", countryID).
		Order("name ASC").
		Find(&states).Error
	if err != nil {
		return nil, err
	}
	return states, nil
}

func (r *locationRepository) CreateCity(ctx context.Context, city *db_models.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}

func (r *locationRepository) DeleteCity(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.City{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *locationRepository) FindCityByID(ctx context.Context, id string) (*db_models.City, error) {
	var city db_models.City
	err := r.db.WithContext(ctx).First(&city, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *locationRepository) ListCitiesByState(ctx context.Context, stateID string) ([]db_models.City, error) {
	var cities []db_models.City
	err := r.db.WithContext(ctx).
		Where("state_id = ?", stateID).
		Order("name ASC").
		Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}
