package services

import (
	"context"

	"adsouq/internal/models/db_models"
	"adsouq/internal/models/response_models"
	"adsouq/internal/repositories"
	"adsouq/pkg/utils"
)

type DashboardServiceInterface interface {
	Overview(ctx context.Context) (*response_models.DashboardResponse, error)
	VIPOverview(ctx context.Context) (*response_models.VIPDashboardResponse, error)
}

type DashboardService struct {
	adRepo   repositories.AdRepository
	userRepo repositories.UserRepository
	subRepo  repositories.SubscriptionRepository
	pkgRepo  repositories.VIPPackageRepository
}

func NewDashboardService(
	adRepo repositories.AdRepository,
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	pkgRepo repositories.VIPPackageRepository,
) DashboardServiceInterface {
	return &DashboardService{
		adRepo:   adRepo,
		userRepo: userRepo,
		subRepo:  subRepo,
		pkgRepo:  pkgRepo,
	}
}

func (s *DashboardService) Overview(ctx context.Context) (*response_models.DashboardResponse, error) {
	totalAds, err := s.adRepo.CountAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	pendingAds, err := s.adRepo.CountPending(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	featuredAds, err := s.adRepo.CountFeatured(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalUsers, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	recent, err := s.adRepo.ListRecent(ctx, 10)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.DashboardResponse{
		TotalAds:    totalAds,
		PendingAds:  pendingAds,
		TotalUsers:  totalUsers,
		FeaturedAds: featuredAds,
		RecentAds:   toAdResponses(recent),
	}, nil
}

func (s *DashboardService) VIPOverview(ctx context.Context) (*response_models.VIPDashboardResponse, error) {
	total, err := s.subRepo.CountAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	pending, err := s.subRepo.CountByStatus(ctx, db_models.PaymentStatusPending)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	active, err := s.subRepo.CountActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	packages, err := s.pkgRepo.CountAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	recent, err := s.subRepo.ListRecent(ctx, 10)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.VIPDashboardResponse{
		TotalSubscriptions:   total,
		PendingSubscriptions: pending,
		ActiveSubscriptions:  active,
		TotalPackages:        packages,
	}
	for i := range recent {
		resp.RecentSubscriptions = append(resp.RecentSubscriptions, toSubscriptionResponse(&recent[i]))
	}
	return resp, nil
}
