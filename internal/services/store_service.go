package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/google/uuid"

	"adsouq/internal/models/db_models"
	"adsouq/internal/models/request_models"
	"adsouq/internal/models/response_models"
	"adsouq/internal/repositories"
	"adsouq/pkg/storage"
	"adsouq/pkg/utils"
)

type StoreServiceInterface interface {
	GetStore(ctx context.Context, storeID string, viewerID string) (*response_models.StoreResponse, error)
	// GetOwnStore returns the caller's storefront, creating it on first
	// access.
	GetOwnStore(ctx context.Context, ownerID string) (*response_models.StoreResponse, error)
	UpdateStore(ctx context.Context, ownerID string, req request_models.UpdateStoreRequest) error
	UploadLogo(ctx context.Context, ownerID string, file *multipart.FileHeader) (*response_models.UploadResponse, error)
	UploadBanner(ctx context.Context, ownerID string, file *multipart.FileHeader) (*response_models.UploadResponse, error)
}

type StoreService struct {
	storeRepo repositories.StoreRepository
	userRepo  repositories.UserRepository
	blobs     storage.BlobStore
}

func NewStoreService(storeRepo repositories.StoreRepository, userRepo repositories.UserRepository, blobs storage.BlobStore) StoreServiceInterface {
	return &StoreService{storeRepo: storeRepo, userRepo: userRepo, blobs: blobs}
}

func (s *StoreService) GetStore(ctx context.Context, storeID string, viewerID string) (*response_models.StoreResponse, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if store == nil {
		return nil, utils.ErrStoreNotFound
	}

	resp := toStoreResponse(store, viewerID == store.OwnerID.String())
	return &resp, nil
}

func (s *StoreService) GetOwnStore(ctx context.Context, ownerID string) (*response_models.StoreResponse, error) {
	store, err := s.findOrCreate(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	resp := toStoreResponse(store, true)
	return &resp, nil
}

func (s *StoreService) findOrCreate(ctx context.Context, ownerID string) (*db_models.MerchantStore, error) {
	store, err := s.storeRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if store != nil {
		return store, nil
	}

	user, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	store = &db_models.MerchantStore{
		OwnerID: user.ID,
		Name:    "متجر " + user.Username,
	}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return store, nil
}

func (s *StoreService) UpdateStore(ctx context.Context, ownerID string, req request_models.UpdateStoreRequest) error {
	store, err := s.findOrCreate(ctx, ownerID)
	if err != nil {
		return err
	}

	if req.Name != nil && *req.Name != "" {
		store.Name = *req.Name
	}
	if req.Description != nil {
		store.Description = *req.Description
	}

	if err := s.storeRepo.Save(ctx, store); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *StoreService) UploadLogo(ctx context.Context, ownerID string, file *multipart.FileHeader) (*response_models.UploadResponse, error) {
	return s.uploadImage(ctx, ownerID, file, "logo", func(store *db_models.MerchantStore, url string) {
		store.LogoURL = url
	})
}

func (s *StoreService) UploadBanner(ctx context.Context, ownerID string, file *multipart.FileHeader) (*response_models.UploadResponse, error) {
	return s.uploadImage(ctx, ownerID, file, "banner", func(store *db_models.MerchantStore, url string) {
		store.BannerURL = url
	})
}

func (s *StoreService) uploadImage(ctx context.Context, ownerID string, file *multipart.FileHeader, kind string, assign func(*db_models.MerchantStore, string)) (*response_models.UploadResponse, error) {
	if file == nil || file.Filename == "" {
		return nil, utils.ErrProofFileMissing
	}
	if !utils.AllowedUploadFile(file.Filename) {
		return nil, utils.ErrUnsupportedFileType
	}

	store, err := s.findOrCreate(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("store_%s_%s_%s.%s", kind, store.ID, uuid.New().String(), utils.FileExt(file.Filename))
	if err := saveUpload(s.blobs, key, file); err != nil {
		log.Printf("Error saving store %s for %s: %v", kind, ownerID, err)
		return nil, utils.ErrDatabaseError
	}

	url := "/static/uploads/" + key
	assign(store, url)
	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.UploadResponse{URL: url}, nil
}
