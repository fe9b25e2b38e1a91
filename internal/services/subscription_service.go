package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"adsouq/internal/models/db_models"
	"adsouq/internal/models/request_models"
	"adsouq/internal/models/response_models"
	"adsouq/internal/repositories"
	mem "adsouq/pkg/memcache"
	"adsouq/pkg/storage"
	"adsouq/pkg/utils"
)

type SubscriptionServiceInterface interface {
	Subscribe(ctx context.Context, form request_models.SubscribeForm, proof *multipart.FileHeader) (*response_models.SubscribeResponse, error)
	GetSubscription(ctx context.Context, id string) (*response_models.SubscriptionResponse, error)
	ListSubscriptions(ctx context.Context, status string, page, pageSize int) (*response_models.SubscriptionListResponse, error)
	ApproveSubscription(ctx context.Context, id string, adminID string, notes string) error
	RejectSubscription(ctx context.Context, id string, adminID string, reason string) error

	// EnsureVIP reports whether the user currently holds an unexpired
	// completed subscription, downgrading the account when it lapsed.
	EnsureVIP(ctx context.Context, userID string) error
}

type SubscriptionService struct {
	subRepo    repositories.SubscriptionRepository
	pkgRepo    repositories.VIPPackageRepository
	methodRepo repositories.PaymentMethodRepository
	userRepo   repositories.UserRepository
	storeRepo  repositories.StoreRepository
	blobs      storage.BlobStore
	vipCache   mem.VIPStatusCache
}

// vipCacheTTL bounds how stale a cached membership check may be.
const vipCacheTTL = 5 * time.Minute

func NewSubscriptionService(
	subRepo repositories.SubscriptionRepository,
	pkgRepo repositories.VIPPackageRepository,
	methodRepo repositories.PaymentMethodRepository,
	userRepo repositories.UserRepository,
	storeRepo repositories.StoreRepository,
	blobs storage.BlobStore,
	vipCache mem.VIPStatusCache,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		subRepo:    subRepo,
		pkgRepo:    pkgRepo,
		methodRepo: methodRepo,
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		blobs:      blobs,
		vipCache:   vipCache,
	}
}

// paymentDetails is the free-form record persisted on the subscription row.
type paymentDetails struct {
	CustomerName      string `json:"customer_name"`
	CustomerEmail     string `json:"customer_email"`
	CustomerPhone     string `json:"customer_phone"`
	TransferReference string `json:"transfer_reference,omitempty"`
	TransferDate      string `json:"transfer_date,omitempty"`
	ProofFile         string `json:"proof_file,omitempty"`
	StateID           string `json:"state_id,omitempty"`
	CityID            string `json:"city_id,omitempty"`
}

func (s *SubscriptionService) Subscribe(ctx context.Context, form request_models.SubscribeForm, proof *multipart.FileHeader) (*response_models.SubscribeResponse, error) {
	if strings.TrimSpace(form.CustomerName) == "" {
		return nil, utils.NewFieldError("customer_name", "يرجى إدخال الاسم")
	}
	if strings.TrimSpace(form.CustomerEmail) == "" {
		return nil, utils.NewFieldError("customer_email", "يرجى إدخال البريد الإلكتروني")
	}
	if strings.TrimSpace(form.CustomerPhone) == "" {
		return nil, utils.NewFieldError("customer_phone", "يرجى إدخال رقم الهاتف")
	}

	pkg, err := s.pkgRepo.FindByID(ctx, form.PackageID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pkg == nil || !pkg.IsActive {
		return nil, utils.ErrPackageNotFound
	}

	if len(pkg.PaymentMethods) == 0 {
		return nil, utils.ErrNoPaymentMethods
	}

	method := pickPackageMethod(pkg, form.PaymentMethodID)
	if method == nil {
		return nil, utils.ErrPaymentMethodMismatch
	}

	var proofKey string
	if method.RequiresProof {
		if proof == nil || proof.Filename == "" {
			return nil, utils.ErrProofFileMissing
		}
		if !utils.AllowedUploadFile(proof.Filename) {
			return nil, utils.ErrUnsupportedFileType
		}
		if strings.TrimSpace(form.TransferReference) == "" || strings.TrimSpace(form.TransferDate) == "" {
			return nil, utils.ErrTransferDetailsRequired
		}
	}

	user, err := s.resolveSubscriber(ctx, form)
	if err != nil {
		return nil, err
	}

	if method.RequiresProof {
		proofKey = fmt.Sprintf("vip_proof_%s_%s.%s",
			utils.SanitizeFilename(form.CustomerEmail),
			uuid.New().String(),
			utils.FileExt(proof.Filename))
		if err := saveUpload(s.blobs, proofKey, proof); err != nil {
			log.Printf("Error saving payment proof for %s: %v", form.CustomerEmail, err)
			return nil, utils.ErrDatabaseError
		}
	}

	details, _ := json.Marshal(paymentDetails{
		CustomerName:      form.CustomerName,
		CustomerEmail:     form.CustomerEmail,
		CustomerPhone:     form.CustomerPhone,
		TransferReference: form.TransferReference,
		TransferDate:      form.TransferDate,
		ProofFile:         proofKey,
		StateID:           form.StateID,
		CityID:            form.CityID,
	})

	// Dates are provisional until approval recomputes them.
	now := utils.NowUnixSeconds()
	sub := &db_models.VIPSubscription{
		UserID:         user.ID,
		PackageID:      pkg.ID,
		StartDate:      now,
		EndDate:        utils.AddDays(now, pkg.DurationDays),
		PaymentStatus:  db_models.PaymentStatusPending,
		PaymentMethod:  method.Code,
		PaymentDetails: datatypes.JSON(details),
		IsActive:       false,
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SubscribeResponse{SubscriptionID: sub.ID.String()}, nil
}

func pickPackageMethod(pkg *db_models.VIPPackage, methodID string) *db_models.PaymentMethod {
	for i := range pkg.PaymentMethods {
		m := &pkg.PaymentMethods[i]
		if m.IsActive && m.ID.String() == methodID {
			return m
		}
	}
	return nil
}

func (s *SubscriptionService) resolveSubscriber(ctx context.Context, form request_models.SubscribeForm) (*db_models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, form.CustomerEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user != nil {
		return user, nil
	}

	username, err := s.uniqueUsernameFromEmail(ctx, form.CustomerEmail)
	if err != nil {
		return nil, err
	}

	password, err := utils.GenerateTempPassword(10)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user = &db_models.User{
		Username:     username,
		Email:        form.CustomerEmail,
		Phone:        form.CustomerPhone,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func (s *SubscriptionService) uniqueUsernameFromEmail(ctx context.Context, email string) (string, error) {
	base := email
	if at := strings.Index(email, "@"); at > 0 {
		base = email[:at]
	}
	base = utils.SanitizeFilename(strings.ToLower(base))

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

func (s *SubscriptionService) GetSubscription(ctx context.Context, id string) (*response_models.SubscriptionResponse, error) {
	sub, err := s.subRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}

	resp := toSubscriptionResponse(sub)
	return &resp, nil
}

func (s *SubscriptionService) ListSubscriptions(ctx context.Context, status string, page, pageSize int) (*response_models.SubscriptionListResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	subs, total, err := s.subRepo.List(ctx, repositories.SubscriptionFilter{
		Status:   status,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.SubscriptionListResponse{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}
	for i := range subs {
		resp.Subscriptions = append(resp.Subscriptions, toSubscriptionResponse(&subs[i]))
	}
	return resp, nil
}

// ApproveSubscription marks the payment completed and grants VIP. The
// subscription window starts at approval time, not submission time.
func (s *SubscriptionService) ApproveSubscription(ctx context.Context, id string, adminID string, notes string) error {
	sub, err := s.subRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil {
		return utils.ErrSubscriptionNotFound
	}
	if sub.PaymentStatus == db_models.PaymentStatusCompleted {
		return nil
	}

	now := utils.NowUnixSeconds()
	sub.PaymentStatus = db_models.PaymentStatusCompleted
	sub.IsActive = true
	sub.StartDate = now
	sub.EndDate = utils.AddDays(now, sub.Package.DurationDays)
	sub.ProcessedAt = &now
	sub.AdminNotes = notes
	if admin, err := uuid.Parse(adminID); err == nil {
		sub.ProcessedBy = &admin
	}

	if err := s.subRepo.Save(ctx, sub); err != nil {
		return utils.ErrDatabaseError
	}

	user, err := s.userRepo.FindByID(ctx, sub.UserID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	user.IsVIP = true
	if err := s.userRepo.Save(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	s.vipCache.Invalidate(user.ID.String())

	return s.ensureStore(ctx, user)
}

// ensureStore provisions the merchant storefront a VIP account is entitled
// to. Safe to call on users that already own one.
func (s *SubscriptionService) ensureStore(ctx context.Context, user *db_models.User) error {
	existing, err := s.storeRepo.FindByOwner(ctx, user.ID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return nil
	}

	store := &db_models.MerchantStore{
		OwnerID: user.ID,
		Name:    "متجر " + user.Username,
	}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SubscriptionService) RejectSubscription(ctx context.Context, id string, adminID string, reason string) error {
	sub, err := s.subRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil {
		return utils.ErrSubscriptionNotFound
	}

	now := utils.NowUnixSeconds()
	sub.PaymentStatus = db_models.PaymentStatusFailed
	sub.IsActive = false
	sub.ProcessedAt = &now
	sub.AdminNotes = reason
	if admin, err := uuid.Parse(adminID); err == nil {
		sub.ProcessedBy = &admin
	}

	if err := s.subRepo.Save(ctx, sub); err != nil {
		return utils.ErrDatabaseError
	}
	s.vipCache.Invalidate(sub.UserID.String())
	return nil
}

func (s *SubscriptionService) EnsureVIP(ctx context.Context, userID string) error {
	if s.vipCache.IsValid(userID) {
		return nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil || !user.IsVIP {
		return utils.ErrVIPRequired
	}

	latest, err := s.subRepo.FindLatestCompletedByUser(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	now := utils.NowUnixSeconds()
	if latest != nil && latest.EndDate >= now {
		ttl := vipCacheTTL
		if remaining := time.Duration(latest.EndDate-now) * time.Second; remaining < ttl {
			ttl = remaining
		}
		s.vipCache.MarkValid(userID, ttl)
		return nil
	}

	// Expired: downgrade on first touch instead of via a background job.
	user.IsVIP = false
	if err := s.userRepo.Save(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	if latest != nil && latest.IsActive {
		latest.IsActive = false
		if err := s.subRepo.Save(ctx, latest); err != nil {
			return utils.ErrDatabaseError
		}
	}
	return utils.ErrVIPExpired
}
