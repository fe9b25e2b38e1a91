package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"adsouq/internal/models/db_models"
	"adsouq/internal/models/request_models"
	"adsouq/internal/models/response_models"
	"adsouq/internal/repositories"
	"adsouq/pkg/storage"
	"adsouq/pkg/utils"
)

type AdServiceInterface interface {
	Home(ctx context.Context) (*response_models.HomeResponse, error)
	GetAdDetail(ctx context.Context, adID string) (*response_models.AdDetailResponse, error)
	Search(ctx context.Context, query request_models.SearchAdsQuery) (*response_models.AdListResponse, error)
	ListByCategory(ctx context.Context, categoryID string) ([]response_models.AdResponse, error)
	CreateAd(ctx context.Context, form request_models.CreateAdForm, images []*multipart.FileHeader, currentUserID string) (*response_models.CreateAdResponse, error)

	ListForModeration(ctx context.Context, status string, page, pageSize int) (*response_models.AdListResponse, error)
	ApproveAd(ctx context.Context, adID string) error
	RejectAd(ctx context.Context, adID string) error
	ToggleFeatured(ctx context.Context, adID string) (bool, error)
	DeleteAd(ctx context.Context, adID string) error
}

type AdService struct {
	adRepo       repositories.AdRepository
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
	locationRepo repositories.LocationRepository
	adSenseRepo  repositories.AdSenseRepository
	settingRepo  repositories.SettingRepository
	blobs        storage.BlobStore
}

func NewAdService(
	adRepo repositories.AdRepository,
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
	locationRepo repositories.LocationRepository,
	adSenseRepo repositories.AdSenseRepository,
	settingRepo repositories.SettingRepository,
	blobs storage.BlobStore,
) AdServiceInterface {
	return &AdService{
		adRepo:       adRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		adSenseRepo:  adSenseRepo,
		settingRepo:  settingRepo,
		blobs:        blobs,
	}
}

func (s *AdService) Home(ctx context.Context) (*response_models.HomeResponse, error) {
	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	featured, err := s.adRepo.ListFeatured(ctx, 6)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	recent, err := s.adRepo.ListRecent(ctx, 12)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	countries, err := s.locationRepo.ListCountries(ctx, true)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	adsense := map[string][]response_models.AdSenseResponse{}
	for _, adType := range []db_models.AdSenseType{
		db_models.AdSenseBanner,
		db_models.AdSenseSidebar,
		db_models.AdSenseContent,
		db_models.AdSenseFooter,
	} {
		placements, err := s.adSenseRepo.ListActiveByType(ctx, adType)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		out := make([]response_models.AdSenseResponse, 0, len(placements))
		for i := range placements {
			out = append(out, toAdSenseResponse(&placements[i]))
		}
		adsense[string(adType)] = out
	}

	showVIP := true
	if setting, err := s.settingRepo.Get(ctx, db_models.SettingShowVIPSection); err == nil && setting != nil {
		showVIP = setting.Value == "true"
	}

	resp := &response_models.HomeResponse{
		FeaturedAds: toAdResponses(featured),
		RecentAds:   toAdResponses(recent),
		AdSense:     adsense,
		ShowVIP:     showVIP,
	}
	for i := range categories {
		resp.Categories = append(resp.Categories, toCategoryResponse(&categories[i]))
	}
	for i := range countries {
		resp.Countries = append(resp.Countries, toCountryResponse(&countries[i]))
	}

	return resp, nil
}

func (s *AdService) GetAdDetail(ctx context.Context, adID string) (*response_models.AdDetailResponse, error) {
	ad, err := s.adRepo.IncrementViews(ctx, adID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if ad == nil {
		return nil, utils.ErrAdNotFound
	}

	related, err := s.adRepo.ListRelated(ctx, ad.CategoryID, ad.ID, 4)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AdDetailResponse{
		Ad:         toAdResponse(ad),
		RelatedAds: toAdResponses(related),
	}, nil
}

func (s *AdService) Search(ctx context.Context, query request_models.SearchAdsQuery) (*response_models.AdListResponse, error) {
	if query.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	ads, total, err := s.adRepo.Search(ctx, repositories.AdFilter{
		Query:      query.Query,
		CategoryID: query.CategoryID,
		CountryID:  query.CountryID,
		StateID:    query.StateID,
		CityID:     query.CityID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AdListResponse{
		Ads:      toAdResponses(ads),
		Page:     query.Page,
		PageSize: query.PageSize,
		Total:    total,
	}, nil
}

func (s *AdService) ListByCategory(ctx context.Context, categoryID string) ([]response_models.AdResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	ads, err := s.adRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toAdResponses(ads), nil
}

var adRequiredFields = []struct {
	name    string
	message string
	get     func(f *request_models.CreateAdForm) string
}{
	{"title", "يرجى إدخال عنوان الإعلان", func(f *request_models.CreateAdForm) string { return f.Title }},
	{"description", "يرجى إدخال وصف الإعلان", func(f *request_models.CreateAdForm) string { return f.Description }},
	{"price", "يرجى إدخال السعر", func(f *request_models.CreateAdForm) string { return f.Price }},
	{"category_id", "يرجى اختيار القسم", func(f *request_models.CreateAdForm) string { return f.CategoryID }},
	{"country_id", "يرجى اختيار الدولة", func(f *request_models.CreateAdForm) string { return f.CountryID }},
}

func (s *AdService) CreateAd(ctx context.Context, form request_models.CreateAdForm, images []*multipart.FileHeader, currentUserID string) (*response_models.CreateAdResponse, error) {
	for _, field := range adRequiredFields {
		if strings.TrimSpace(field.get(&form)) == "" {
			return nil, utils.NewFieldError(field.name, field.message)
		}
	}

	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || price < 0 {
		return nil, utils.ErrInvalidPrice
	}

	categoryID, err := uuid.Parse(form.CategoryID)
	if err != nil {
		return nil, utils.ErrCategoryNotFound
	}
	countryID, err := uuid.Parse(form.CountryID)
	if err != nil {
		return nil, utils.ErrCountryNotFound
	}

	user, tempPassword, err := s.resolveAdvertiser(ctx, form, currentUserID)
	if err != nil {
		return nil, err
	}

	// Files land in the blob store before the row commits. A failed commit
	// leaves them orphaned; accepted as-is.
	keys := make([]string, 0, len(images))
	for _, file := range images {
		if file == nil || file.Filename == "" {
			continue
		}
		key := fmt.Sprintf("ad_%s.%s", uuid.New().String(), utils.FileExt(utils.SanitizeFilename(file.Filename)))
		if err := saveUpload(s.blobs, key, file); err != nil {
			log.Printf("Error saving ad image %s: %v", file.Filename, err)
			return nil, utils.ErrDatabaseError
		}
		keys = append(keys, key)
	}

	imageJSON, _ := json.Marshal(keys)

	currency := form.Currency
	if currency == "" {
		currency = "SAR"
	}

	ad := &db_models.Ad{
		Title:        form.Title,
		Description:  form.Description,
		Price:        price,
		Currency:     currency,
		Images:       datatypes.JSON(imageJSON),
		UserID:       user.ID,
		CategoryID:   categoryID,
		CountryID:    countryID,
		ContactPhone: form.ContactPhone,
		ContactEmail: form.ContactEmail,
		IsActive:     true,
		IsApproved:   false,
	}

	if form.StateID != "" {
		if id, err := uuid.Parse(form.StateID); err == nil {
			ad.StateID = &id
		}
	}
	if form.CityID != "" {
		if id, err := uuid.Parse(form.CityID); err == nil {
			ad.CityID = &id
		}
	}
	if user.Store != nil {
		ad.StoreID = &user.Store.ID
	}

	adID, err := s.adRepo.Create(ctx, ad)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.CreateAdResponse{
		AdID:  adID.String(),
		AdURL: fmt.Sprintf("/ad/%s/%s", adID, utils.Slugify(ad.Title)),
	}
	if tempPassword != "" {
		resp.AccountCreated = true
		resp.Username = user.Username
		resp.Password = tempPassword
	}

	return resp, nil
}

// resolveAdvertiser finds the posting user, or provisions one from the
// contact phone/email. The returned password is non-empty only for a
// freshly created account.
func (s *AdService) resolveAdvertiser(ctx context.Context, form request_models.CreateAdForm, currentUserID string) (*db_models.User, string, error) {
	if currentUserID != "" {
		user, err := s.userRepo.FindByID(ctx, currentUserID)
		if err != nil {
			return nil, "", utils.ErrDatabaseError
		}
		if user != nil {
			return user, "", nil
		}
	}

	if form.ContactPhone == "" {
		return nil, "", utils.NewFieldError("contact_phone", "يرجى إدخال رقم الهاتف")
	}

	existing, err := s.userRepo.FindByPhone(ctx, form.ContactPhone)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if existing != nil {
		return existing, "", nil
	}

	username, err := s.uniqueUsernameFromPhone(ctx, form.ContactPhone)
	if err != nil {
		return nil, "", err
	}

	password, err := utils.GenerateTempPassword(8)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	email := form.ContactEmail
	if email == "" {
		email = username + "@temp.com"
	}

	user := &db_models.User{
		Username:     username,
		Email:        email,
		Phone:        form.ContactPhone,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	return user, password, nil
}

// Username probing is a read-then-insert without locking; a concurrent
// creator can still collide on the unique index.
func (s *AdService) uniqueUsernameFromPhone(ctx context.Context, phone string) (string, error) {
	cleaned := strings.NewReplacer("+", "", "-", "", " ", "").Replace(phone)
	base := "user_" + cleaned

	username := base
	for counter := 1; ; counter++ {
		exists, err := s.userRepo.UsernameExists(ctx, username)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		if !exists {
			return username, nil
		}
		username = fmt.Sprintf("%s_%d", base, counter)
	}
}

func (s *AdService) ListForModeration(ctx context.Context, status string, page, pageSize int) (*response_models.AdListResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	ads, total, err := s.adRepo.ListForModeration(ctx, repositories.AdModerationFilter{
		Status:   status,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AdListResponse{
		Ads:      toAdResponses(ads),
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func (s *AdService) ApproveAd(ctx context.Context, adID string) error {
	ad, err := s.adRepo.FindByID(ctx, adID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if ad == nil {
		return utils.ErrAdNotFound
	}

	ad.IsApproved = true
	if err := s.adRepo.Save(ctx, ad); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AdService) RejectAd(ctx context.Context, adID string) error {
	ad, err := s.adRepo.FindByID(ctx, adID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if ad == nil {
		return utils.ErrAdNotFound
	}

	ad.IsApproved = false
	ad.IsActive = false
	if err := s.adRepo.Save(ctx, ad); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AdService) ToggleFeatured(ctx context.Context, adID string) (bool, error) {
	ad, err := s.adRepo.FindByID(ctx, adID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if ad == nil {
		return false, utils.ErrAdNotFound
	}

	ad.IsFeatured = !ad.IsFeatured
	if err := s.adRepo.Save(ctx, ad); err != nil {
		return false, utils.ErrDatabaseError
	}
	return ad.IsFeatured, nil
}

// DeleteAd removes the row and every image blob it references.
func (s *AdService) DeleteAd(ctx context.Context, adID string) error {
	ad, err := s.adRepo.FindByID(ctx, adID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if ad == nil {
		return utils.ErrAdNotFound
	}

	var keys []string
	if len(ad.Images) > 0 {
		_ = json.Unmarshal(ad.Images, &keys)
	}
	for _, key := range keys {
		if err := s.blobs.Delete(key); err != nil {
			log.Printf("Error deleting ad image %s: %v", key, err)
		}
	}

	if err := s.adRepo.Delete(ctx, ad.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func saveUpload(blobs storage.BlobStore, key string, file *multipart.FileHeader) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	return blobs.Save(key, src)
}
