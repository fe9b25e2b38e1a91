package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"adsouq/internal/models/db_models"
	"adsouq/internal/models/request_models"
	"adsouq/internal/models/response_models"
	"adsouq/internal/repositories"
	"adsouq/pkg/utils"
)

type TaxonomyServiceInterface interface {
	ListCategories(ctx context.Context, includeInactive bool) ([]response_models.CategoryResponse, error)
	CreateCategory(ctx context.Context, req request_models.CategoryRequest) (*response_models.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id string, req request_models.CategoryRequest) error
	ToggleCategory(ctx context.Context, id string) (bool, error)
	DeleteCategory(ctx context.Context, id string) error

	ListCountries(ctx context.Context, includeInactive bool) ([]response_models.CountryResponse, error)
	CreateCountry(ctx context.Context, req request_models.CountryRequest) (*response_models.CountryResponse, error)
	DeleteCountry(ctx context.Context, id string) error

	ListStates(ctx context.Context, countryID string) (*response_models.StateListResponse, error)
	CreateState(ctx context.Context, req request_models.StateRequest) (*response_models.StateResponse, error)
	DeleteState(ctx context.Context, id string) error

	ListCities(ctx context.Context, stateID string) ([]response_models.CityResponse, error)
	CreateCity(ctx context.Context, req request_models.CityRequest) (*response_models.CityResponse, error)
	DeleteCity(ctx context.Context, id string) error
}

type TaxonomyService struct {
	categoryRepo repositories.CategoryRepository
	locationRepo repositories.LocationRepository
}

func NewTaxonomyService(categoryRepo repositories.CategoryRepository, locationRepo repositories.LocationRepository) TaxonomyServiceInterface {
	return &TaxonomyService{categoryRepo: categoryRepo, locationRepo: locationRepo}
}

func (s *TaxonomyService) ListCategories(ctx context.Context, includeInactive bool) ([]response_models.CategoryResponse, error) {
	var (
		categories []db_models.Category
		err        error
	)
	if includeInactive {
		categories, err = s.categoryRepo.ListAll(ctx)
	} else {
		categories, err = s.categoryRepo.ListActive(ctx)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	return out, nil
}

func (s *TaxonomyService) CreateCategory(ctx context.Context, req request_models.CategoryRequest) (*response_models.CategoryResponse, error) {
	category := &db_models.Category{
		Name:         req.Name,
		NameEn:       req.NameEn,
		Description:  req.Description,
		Slug:         utils.Slugify(req.Name),
		Icon:         req.Icon,
		Color:        req.Color,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if req.ParentID != "" {
		parentID, err := uuid.Parse(req.ParentID)
		if err != nil {
			return nil, utils.ErrCategoryNotFound
		}
		parent, err := s.categoryRepo.FindByID(ctx, req.ParentID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if parent == nil {
			return nil, utils.ErrCategoryNotFound
		}
		category.ParentID = &parentID
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toCategoryResponse(category)
	return &resp, nil
}

func (s *TaxonomyService) UpdateCategory(ctx context.Context, id string, req request_models.CategoryRequest) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}

	// The slug follows the name so bookmarked category URLs go stale on
	// rename, same as a fresh create would produce.
	category.Name = req.Name
	category.NameEn = req.NameEn
	category.Description = req.Description
	category.Slug = utils.Slugify(req.Name)
	category.Icon = req.Icon
	category.Color = req.Color
	category.DisplayOrder = req.DisplayOrder

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TaxonomyService) ToggleCategory(ctx context.Context, id string) (bool, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if category == nil {
		return false, utils.ErrCategoryNotFound
	}

	category.IsActive = !category.IsActive
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return false, utils.ErrDatabaseError
	}
	return category.IsActive, nil
}

func (s *TaxonomyService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}
	if err := s.categoryRepo.Delete(ctx, category.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TaxonomyService) ListCountries(ctx context.Context, includeInactive bool) ([]response_models.CountryResponse, error) {
	countries, err := s.locationRepo.ListCountries(ctx, !includeInactive)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CountryResponse, 0, len(countries))
	for i := range countries {
		out = append(out, toCountryResponse(&countries[i]))
	}
	return out, nil
}

func (s *TaxonomyService) CreateCountry(ctx context.Context, req request_models.CountryRequest) (*response_models.CountryResponse, error) {
	code := strings.ToUpper(req.Code)
	existing, err := s.locationRepo.FindCountryByCode(ctx, code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDuplicateRecord
	}

	country := &db_models.Country{
		Name:      req.Name,
		NameEn:    req.NameEn,
		Code:      code,
		PhoneCode: req.PhoneCode,
		Currency:  req.Currency,
		Flag:      req.Flag,
		IsActive:  true,
	}
	if err := s.locationRepo.CreateCountry(ctx, country); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toCountryResponse(country)
	return &resp, nil
}

func (s *TaxonomyService) DeleteCountry(ctx context.Context, id string) error {
	country, err := s.locationRepo.FindCountryByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if country == nil {
		return utils.ErrCountryNotFound
	}
	if err := s.locationRepo.DeleteCountry(ctx, country.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TaxonomyService) ListStates(ctx context.Context, countryID string) (*response_models.StateListResponse, error) {
	country, err := s.locationRepo.FindCountryByID(ctx, countryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	states, err := s.locationRepo.ListStatesByCountry(ctx, countryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.StateListResponse{
		States:           make([]response_models.StateResponse, 0, len(states)),
		CountryPhoneCode: country.PhoneCode,
	}
	for i := range states {
		resp.States = append(resp.States, response_models.StateResponse{
			ID:     states[i].ID.String(),
			Name:   states[i].Name,
			NameEn: states[i].NameEn,
		})
	}
	return resp, nil
}

func (s *TaxonomyService) CreateState(ctx context.Context, req request_models.StateRequest) (*response_models.StateResponse, error) {
	country, err := s.locationRepo.FindCountryByID(ctx, req.CountryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	state := &db_models.State{
		Name:      req.Name,
		NameEn:    req.NameEn,
		CountryID: country.ID,
		IsActive:  true,
	}
	if err := s.locationRepo.CreateState(ctx, state); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.StateResponse{
		ID:     state.ID.String(),
		Name:   state.Name,
		NameEn: state.NameEn,
	}, nil
}

func (s *TaxonomyService) DeleteState(ctx context.Context, id string) error {
	state, err := s.locationRepo.FindStateByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if state == nil {
		return utils.ErrStateNotFound
	}
	if err := s.locationRepo.DeleteState(ctx, state.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TaxonomyService) ListCities(ctx context.Context, stateID string) ([]response_models.CityResponse, error) {
	state, err := s.locationRepo.FindStateByID(ctx, stateID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if state == nil {
		return nil, utils.ErrStateNotFound
	}

	cities, err := s.locationRepo.ListCitiesByState(ctx, stateID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CityResponse, 0, len(cities))
	for i := range cities {
		out = append(out, response_models.CityResponse{
			ID:     cities[i].ID.String(),
			Name:   cities[i].Name,
			NameEn: cities[i].NameEn,
		})
	}
	return out, nil
}

func (s *TaxonomyService) CreateCity(ctx context.Context, req request_models.CityRequest) (*response_models.CityResponse, error) {
	state, err := s.locationRepo.FindStateByID(ctx, req.StateID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if state == nil {
		return nil, utils.ErrStateNotFound
	}

	city := &db_models.City{
		Name:     req.Name,
		NameEn:   req.NameEn,
		StateID:  state.ID,
		IsActive: true,
	}
	if err := s.locationRepo.CreateCity(ctx, city); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CityResponse{
		ID:     city.ID.String(),
		Name:   city.Name,
		NameEn: city.NameEn,
	}, nil
}

func (s *TaxonomyService) DeleteCity(ctx context.Context, id string) error {
	city, err := s.locationRepo.FindCityByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if city == nil {
		return utils.ErrCityNotFound
	}
	if err := s.locationRepo.DeleteCity(ctx, city.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
