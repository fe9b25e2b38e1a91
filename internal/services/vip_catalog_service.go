package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"adsouq/internal/models/db_models"
	"adsouq/internal/models/request_models"
	"adsouq/internal/models/response_models"
	"adsouq/internal/repositories"
	"adsouq/pkg/utils"
)

// VIPCatalogService manages the sellable side of the VIP program: packages
// and the payment methods merchants can pay through.
type VIPCatalogServiceInterface interface {
	ListPackagesByCountry(ctx context.Context, countryID string) ([]response_models.VIPPackageResponse, error)
	ListPackagesByCountryCode(ctx context.Context, code string) ([]response_models.VIPPackageResponse, error)
	ListAllPackages(ctx context.Context) ([]response_models.VIPPackageResponse, error)
	GetPackage(ctx context.Context, id string) (*response_models.VIPPackageResponse, error)
	CreatePackage(ctx context.Context, req request_models.VIPPackageRequest) (*response_models.VIPPackageResponse, error)
	UpdatePackage(ctx context.Context, id string, req request_models.VIPPackageRequest) error
	TogglePackage(ctx context.Context, id string) (bool, error)
	DeletePackage(ctx context.Context, id string) error

	ListPaymentMethods(ctx context.Context, countryID string, includeInactive bool) ([]response_models.PaymentMethodResponse, error)
	ListAllPaymentMethods(ctx context.Context) ([]response_models.PaymentMethodResponse, error)
	CreatePaymentMethod(ctx context.Context, req request_models.PaymentMethodRequest) (*response_models.PaymentMethodResponse, error)
	UpdatePaymentMethod(ctx context.Context, id string, req request_models.PaymentMethodRequest) error
	DeletePaymentMethod(ctx context.Context, id string) error
}

type VIPCatalogService struct {
	pkgRepo      repositories.VIPPackageRepository
	methodRepo   repositories.PaymentMethodRepository
	locationRepo repositories.LocationRepository
}

func NewVIPCatalogService(
	pkgRepo repositories.VIPPackageRepository,
	methodRepo repositories.PaymentMethodRepository,
	locationRepo repositories.LocationRepository,
) VIPCatalogServiceInterface {
	return &VIPCatalogService{
		pkgRepo:      pkgRepo,
		methodRepo:   methodRepo,
		locationRepo: locationRepo,
	}
}

func (s *VIPCatalogService) ListPackagesByCountry(ctx context.Context, countryID string) ([]response_models.VIPPackageResponse, error) {
	country, err := s.locationRepo.FindCountryByID(ctx, countryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	packages, err := s.pkgRepo.ListByCountry(ctx, countryID, true)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPackageResponses(packages), nil
}

func (s *VIPCatalogService) ListPackagesByCountryCode(ctx context.Context, code string) ([]response_models.VIPPackageResponse, error) {
	country, err := s.locationRepo.FindCountryByCode(ctx, code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	packages, err := s.pkgRepo.ListByCountry(ctx, country.ID.String(), true)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPackageResponses(packages), nil
}

func (s *VIPCatalogService) ListAllPackages(ctx context.Context) ([]response_models.VIPPackageResponse, error) {
	packages, err := s.pkgRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPackageResponses(packages), nil
}

func toPackageResponses(packages []db_models.VIPPackage) []response_models.VIPPackageResponse {
	out := make([]response_models.VIPPackageResponse, 0, len(packages))
	for i := range packages {
		out = append(out, toPackageResponse(&packages[i]))
	}
	return out
}

func (s *VIPCatalogService) GetPackage(ctx context.Context, id string) (*response_models.VIPPackageResponse, error) {
	pkg, err := s.pkgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pkg == nil {
		return nil, utils.ErrPackageNotFound
	}

	resp := toPackageResponse(pkg)
	return &resp, nil
}

// resolvePackageMethods validates the requested method set belongs to the
// package's country before any write happens.
func (s *VIPCatalogService) resolvePackageMethods(ctx context.Context, methodIDs []string, countryID string) ([]db_models.PaymentMethod, error) {
	if len(methodIDs) == 0 {
		return nil, utils.ErrNoPaymentMethods
	}

	methods, err := s.methodRepo.FindActiveByIDsAndCountry(ctx, methodIDs, countryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(methods) != len(methodIDs) {
		return nil, utils.ErrPaymentMethodMismatch
	}
	return methods, nil
}

func (s *VIPCatalogService) CreatePackage(ctx context.Context, req request_models.VIPPackageRequest) (*response_models.VIPPackageResponse, error) {
	country, err := s.locationRepo.FindCountryByID(ctx, req.CountryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	methods, err := s.resolvePackageMethods(ctx, req.PaymentMethodIDs, req.CountryID)
	if err != nil {
		return nil, err
	}

	pkg := &db_models.VIPPackage{
		Name:              req.Name,
		NameEn:            req.NameEn,
		Description:       req.Description,
		Price:             req.Price,
		Currency:          req.Currency,
		DurationDays:      req.DurationDays,
		CountryID:         country.ID,
		FeaturedAdsCount:  req.FeaturedAdsCount,
		CustomBadge:       req.CustomBadge,
		PrioritySupport:   req.PrioritySupport,
		AdvancedAnalytics: req.AdvancedAnalytics,
		BoostInSearch:     req.BoostInSearch,
		Features:          datatypes.JSON([]byte("[]")),
		IsActive:          true,
	}
	if err := s.pkgRepo.Create(ctx, pkg); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if err := s.pkgRepo.ReplacePaymentMethods(ctx, pkg, methods); err != nil {
		return nil, utils.ErrDatabaseError
	}

	pkg.PaymentMethods = methods
	resp := toPackageResponse(pkg)
	return &resp, nil
}

func (s *VIPCatalogService) UpdatePackage(ctx context.Context, id string, req request_models.VIPPackageRequest) error {
	pkg, err := s.pkgRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if pkg == nil {
		return utils.ErrPackageNotFound
	}

	country, err := s.locationRepo.FindCountryByID(ctx, req.CountryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if country == nil {
		return utils.ErrCountryNotFound
	}

	methods, err := s.resolvePackageMethods(ctx, req.PaymentMethodIDs, req.CountryID)
	if err != nil {
		return err
	}

	pkg.Name = req.Name
	pkg.NameEn = req.NameEn
	pkg.Description = req.Description
	pkg.Price = req.Price
	pkg.Currency = req.Currency
	pkg.DurationDays = req.DurationDays
	pkg.CountryID = country.ID
	pkg.FeaturedAdsCount = req.FeaturedAdsCount
	pkg.CustomBadge = req.CustomBadge
	pkg.PrioritySupport = req.PrioritySupport
	pkg.AdvancedAnalytics = req.AdvancedAnalytics
	pkg.BoostInSearch = req.BoostInSearch

	if err := s.pkgRepo.Save(ctx, pkg); err != nil {
		return utils.ErrDatabaseError
	}
	if err := s.pkgRepo.ReplacePaymentMethods(ctx, pkg, methods); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *VIPCatalogService) TogglePackage(ctx context.Context, id string) (bool, error) {
	pkg, err := s.pkgRepo.FindByID(ctx, id)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if pkg == nil {
		return false, utils.ErrPackageNotFound
	}

	pkg.IsActive = !pkg.IsActive
	if err := s.pkgRepo.Save(ctx, pkg); err != nil {
		return false, utils.ErrDatabaseError
	}
	return pkg.IsActive, nil
}

func (s *VIPCatalogService) DeletePackage(ctx context.Context, id string) error {
	pkg, err := s.pkgRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if pkg == nil {
		return utils.ErrPackageNotFound
	}
	if err := s.pkgRepo.Delete(ctx, pkg.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *VIPCatalogService) ListPaymentMethods(ctx context.Context, countryID string, includeInactive bool) ([]response_models.PaymentMethodResponse, error) {
	country, err := s.locationRepo.FindCountryByID(ctx, countryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	methods, err := s.methodRepo.ListByCountry(ctx, countryID, !includeInactive)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPaymentMethodResponses(methods), nil
}

func (s *VIPCatalogService) ListAllPaymentMethods(ctx context.Context) ([]response_models.PaymentMethodResponse, error) {
	methods, err := s.methodRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPaymentMethodResponses(methods), nil
}

func toPaymentMethodResponses(methods []db_models.PaymentMethod) []response_models.PaymentMethodResponse {
	out := make([]response_models.PaymentMethodResponse, 0, len(methods))
	for i := range methods {
		out = append(out, toPaymentMethodResponse(&methods[i]))
	}
	return out
}

func (s *VIPCatalogService) CreatePaymentMethod(ctx context.Context, req request_models.PaymentMethodRequest) (*response_models.PaymentMethodResponse, error) {
	country, err := s.locationRepo.FindCountryByID(ctx, req.CountryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	method := &db_models.PaymentMethod{
		Name:           req.Name,
		NameEn:         req.NameEn,
		Code:           req.Code,
		Icon:           req.Icon,
		CountryID:      country.ID,
		RequiresProof:  req.RequiresProof,
		Instructions:   req.Instructions,
		InstructionsEn: req.InstructionsEn,
		AccountName:    req.AccountName,
		AccountNumber:  req.AccountNumber,
		BankName:       req.BankName,
		IBAN:           req.IBAN,
		SwiftCode:      req.SwiftCode,
		IsActive:       req.IsActive,
		SortOrder:      req.SortOrder,
	}
	if err := s.methodRepo.Create(ctx, method); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toPaymentMethodResponse(method)
	return &resp, nil
}

func (s *VIPCatalogService) UpdatePaymentMethod(ctx context.Context, id string, req request_models.PaymentMethodRequest) error {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if method == nil {
		return utils.ErrPaymentMethodNotFound
	}

	countryID, err := uuid.Parse(req.CountryID)
	if err != nil {
		return utils.ErrCountryNotFound
	}

	method.Name = req.Name
	method.NameEn = req.NameEn
	method.Code = req.Code
	method.Icon = req.Icon
	method.CountryID = countryID
	method.RequiresProof = req.RequiresProof
	method.Instructions = req.Instructions
	method.InstructionsEn = req.InstructionsEn
	method.AccountName = req.AccountName
	method.AccountNumber = req.AccountNumber
	method.BankName = req.BankName
	method.IBAN = req.IBAN
	method.SwiftCode = req.SwiftCode
	method.IsActive = req.IsActive
	method.SortOrder = req.SortOrder

	if err := s.methodRepo.Save(ctx, method); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *VIPCatalogService) DeletePaymentMethod(ctx context.Context, id string) error {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if method == nil {
		return utils.ErrPaymentMethodNotFound
	}
	if err := s.methodRepo.Delete(ctx, method.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
