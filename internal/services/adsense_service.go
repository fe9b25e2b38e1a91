package services

import (
	"context"
	"time"

	"adsouq/internal/models/db_models"
	"adsouq/internal/models/request_models"
	"adsouq/internal/models/response_models"
	"adsouq/internal/repositories"
	"adsouq/pkg/utils"
)

type AdSenseServiceInterface interface {
	ListPlacements(ctx context.Context) ([]response_models.AdSenseResponse, error)
	CreatePlacement(ctx context.Context, req request_models.AdSenseRequest) (*response_models.AdSenseResponse, error)
	UpdatePlacement(ctx context.Context, id string, req request_models.AdSenseRequest) error
	TogglePlacement(ctx context.Context, id string) (bool, error)
	DeletePlacement(ctx context.Context, id string) error
}

type AdSenseService struct {
	adSenseRepo repositories.AdSenseRepository
}

func NewAdSenseService(adSenseRepo repositories.AdSenseRepository) AdSenseServiceInterface {
	return &AdSenseService{adSenseRepo: adSenseRepo}
}

func (s *AdSenseService) ListPlacements(ctx context.Context) ([]response_models.AdSenseResponse, error) {
	placements, err := s.adSenseRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AdSenseResponse, 0, len(placements))
	for i := range placements {
		out = append(out, toAdSenseResponse(&placements[i]))
	}
	return out, nil
}

func (s *AdSenseService) CreatePlacement(ctx context.Context, req request_models.AdSenseRequest) (*response_models.AdSenseResponse, error) {
	placement := &db_models.AdSensePlacement{
		Name:         req.Name,
		Description:  req.Description,
		AdType:       db_models.AdSenseType(req.AdType),
		HTMLCode:     req.HTMLCode,
		DisplayOrder: req.DisplayOrder,
		StartDate:    parseDateField(req.StartDate),
		EndDate:      parseDateField(req.EndDate),
		IsActive:     req.IsActive,
	}
	if err := s.adSenseRepo.Create(ctx, placement); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toAdSenseResponse(placement)
	return &resp, nil
}

// parseDateField accepts a YYYY-MM-DD form value; empty or malformed input
// yields an open-ended bound.
func parseDateField(value string) *int64 {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	unix := t.Unix()
	return &unix
}

func (s *AdSenseService) UpdatePlacement(ctx context.Context, id string, req request_models.AdSenseRequest) error {
	placement, err := s.adSenseRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if placement == nil {
		return utils.ErrAdSenseNotFound
	}

	placement.Name = req.Name
	placement.Description = req.Description
	placement.AdType = db_models.AdSenseType(req.AdType)
	placement.HTMLCode = req.HTMLCode
	placement.DisplayOrder = req.DisplayOrder
	placement.StartDate = parseDateField(req.StartDate)
	placement.EndDate = parseDateField(req.EndDate)
	placement.IsActive = req.IsActive

	if err := s.adSenseRepo.Save(ctx, placement); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AdSenseService) TogglePlacement(ctx context.Context, id string) (bool, error) {
	placement, err := s.adSenseRepo.FindByID(ctx, id)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if placement == nil {
		return false, utils.ErrAdSenseNotFound
	}

	placement.IsActive = !placement.IsActive
	if err := s.adSenseRepo.Save(ctx, placement); err != nil {
		return false, utils.ErrDatabaseError
	}
	return placement.IsActive, nil
}

func (s *AdSenseService) DeletePlacement(ctx context.Context, id string) error {
	placement, err := s.adSenseRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if placement == nil {
		return utils.ErrAdSenseNotFound
	}
	if err := s.adSenseRepo.Delete(ctx, placement.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
