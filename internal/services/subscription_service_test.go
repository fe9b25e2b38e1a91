package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"adsouq/internal/models/db_models"
	"adsouq/internal/models/request_models"
	"adsouq/internal/repositories"
	mem "adsouq/pkg/memcache"
	"adsouq/pkg/storage"
	"adsouq/pkg/utils"
)

func newSubscriptionService(t *testing.T, db *gorm.DB, blobs storage.BlobStore) SubscriptionServiceInterface {
	t.Helper()

	return NewSubscriptionService(
		repositories.NewSubscriptionRepository(db),
		repositories.NewVIPPackageRepository(db),
		repositories.NewPaymentMethodRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewStoreRepository(db),
		blobs,
		mem.NewVIPStatus(),
	)
}

func validSubscribeForm(pkg *db_models.VIPPackage, method *db_models.PaymentMethod) request_models.SubscribeForm {
	return request_models.SubscribeForm{
		PackageID:         pkg.ID.String(),
		PaymentMethodID:   method.ID.String(),
		CustomerName:      "أحمد",
		CustomerEmail:     "ahmed@example.com",
		CustomerPhone:     "+966501234567",
		TransferReference: "TRX-100",
		TransferDate:      "2026-08-01",
	}
}

func TestSubscribeRequiresProofFile(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	method := createTestPaymentMethod(t, db, country, true)
	pkg := createTestPackage(t, db, country, method)
	svc := newSubscriptionService(t, db, newTestBlobs(t))

	_, err := svc.Subscribe(context.Background(), validSubscribeForm(pkg, method), nil)
	require.ErrorIs(t, err, utils.ErrProofFileMissing)

	var count int64
	require.NoError(t, db.Model(&db_models.VIPSubscription{}).Count(&count).Error)
	assert.Zero(t, count, "rejected request must not persist a subscription")
}

func TestSubscribeRejectsUnsupportedProofType(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	method := createTestPaymentMethod(t, db, country, true)
	pkg := createTestPackage(t, db, country, method)
	svc := newSubscriptionService(t, db, newTestBlobs(t))

	proof := makeFileHeader(t, "payment_proof", "receipt.exe", []byte("MZ"))
	_, err := svc.Subscribe(context.Background(), validSubscribeForm(pkg, method), proof)
	require.ErrorIs(t, err, utils.ErrUnsupportedFileType)
}

func TestSubscribeRequiresTransferDetails(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	method := createTestPaymentMethod(t, db, country, true)
	pkg := createTestPackage(t, db, country, method)
	svc := newSubscriptionService(t, db, newTestBlobs(t))

	form := validSubscribeForm(pkg, method)
	form.TransferReference = ""
	proof := makeFileHeader(t, "payment_proof", "receipt.png", []byte("png-bytes"))

	_, err := svc.Subscribe(context.Background(), form, proof)
	require.ErrorIs(t, err, utils.ErrTransferDetailsRequired)
}

func TestSubscribeRejectsForeignPaymentMethod(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	linked := createTestPaymentMethod(t, db, country, false)
	pkg := createTestPackage(t, db, country, linked)

	other := &db_models.PaymentMethod{
		Name: "Other", NameEn: "Other", Code: "other",
		CountryID: country.ID, IsActive: true,
	}
	require.NoError(t, db.Create(other).Error)

	svc := newSubscriptionService(t, db, newTestBlobs(t))
	form := validSubscribeForm(pkg, other)

	_, err := svc.Subscribe(context.Background(), form, nil)
	require.ErrorIs(t, err, utils.ErrPaymentMethodMismatch)
}

func TestSubscribeCreatesPendingSubscriptionAndAccount(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	method := createTestPaymentMethod(t, db, country, true)
	pkg := createTestPackage(t, db, country, method)
	blobs := newTestBlobs(t)
	svc := newSubscriptionService(t, db, blobs)

	proof := makeFileHeader(t, "payment_proof", "receipt.png", []byte("png-bytes"))
	result, err := svc.Subscribe(context.Background(), validSubscribeForm(pkg, method), proof)
	require.NoError(t, err)
	require.NotEmpty(t, result.SubscriptionID)

	var sub db_models.VIPSubscription
	require.NoError(t, db.First(&sub, "id = ?", result.SubscriptionID).Error)
	assert.Equal(t, db_models.PaymentStatusPending, sub.PaymentStatus)
	assert.False(t, sub.IsActive)
	assert.Equal(t, "bank_transfer", sub.PaymentMethod)

	var details paymentDetails
	require.NoError(t, json.Unmarshal(sub.PaymentDetails, &details))
	assert.Equal(t, "ahmed@example.com", details.CustomerEmail)
	assert.True(t, strings.HasPrefix(details.ProofFile, "vip_proof_"), "proof key %q", details.ProofFile)
	assert.True(t, blobs.Exists(details.ProofFile))

	var user db_models.User
	require.NoError(t, db.First(&user, "email = ?", "ahmed@example.com").Error)
	assert.False(t, user.IsVIP, "VIP is only granted on approval")
	assert.Equal(t, user.ID, sub.UserID)
}

func TestSubscribeReusesExistingAccount(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	method := createTestPaymentMethod(t, db, country, false)
	pkg := createTestPackage(t, db, country, method)
	existing := createTestUser(t, db, "ahmed", "ahmed@example.com")
	svc := newSubscriptionService(t, db, newTestBlobs(t))

	result, err := svc.Subscribe(context.Background(), validSubscribeForm(pkg, method), nil)
	require.NoError(t, err)

	var sub db_models.VIPSubscription
	require.NoError(t, db.First(&sub, "id = ?", result.SubscriptionID).Error)
	assert.Equal(t, existing.ID, sub.UserID)

	var count int64
	require.NoError(t, db.Model(&db_models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApproveSubscriptionGrantsVIP(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	method := createTestPaymentMethod(t, db, country, false)
	pkg := createTestPackage(t, db, country, method)
	admin := createTestUser(t, db, "admin", "admin@example.com")
	svc := newSubscriptionService(t, db, newTestBlobs(t))

	result, err := svc.Subscribe(context.Background(), validSubscribeForm(pkg, method), nil)
	require.NoError(t, err)

	before := time.Now().Unix()
	require.NoError(t, svc.ApproveSubscription(context.Background(), result.SubscriptionID, admin.ID.String(), "ok"))

	var sub db_models.VIPSubscription
	require.NoError(t, db.First(&sub, "id = ?", result.SubscriptionID).Error)
	assert.Equal(t, db_models.PaymentStatusCompleted, sub.PaymentStatus)
	assert.True(t, sub.IsActive)
	assert.GreaterOrEqual(t, sub.StartDate, before, "window starts at approval, not submission")
	assert.Equal(t, time.Unix(sub.StartDate, 0).AddDate(0, 0, 30).Unix(), sub.EndDate)
	require.NotNil(t, sub.ProcessedAt)
	require.NotNil(t, sub.ProcessedBy)
	assert.Equal(t, admin.ID, *sub.ProcessedBy)

	var user db_models.User
	require.NoError(t, db.First(&user, "id = ?", sub.UserID).Error)
	assert.True(t, user.IsVIP)

	var stores int64
	require.NoError(t, db.Model(&db_models.MerchantStore{}).Where("owner_id = ?", sub.UserID).Count(&stores).Error)
	assert.EqualValues(t, 1, stores)

	// Second approval is a no-op, not a double grant.
	require.NoError(t, svc.ApproveSubscription(context.Background(), result.SubscriptionID, admin.ID.String(), "again"))
	require.NoError(t, db.Model(&db_models.MerchantStore{}).Where("owner_id = ?", sub.UserID).Count(&stores).Error)
	assert.EqualValues(t, 1, stores)
}

func TestRejectSubscription(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	method := createTestPaymentMethod(t, db, country, false)
	pkg := createTestPackage(t, db, country, method)
	admin := createTestUser(t, db, "admin", "admin@example.com")
	svc := newSubscriptionService(t, db, newTestBlobs(t))

	result, err := svc.Subscribe(context.Background(), validSubscribeForm(pkg, method), nil)
	require.NoError(t, err)

	require.NoError(t, svc.RejectSubscription(context.Background(), result.SubscriptionID, admin.ID.String(), "إيصال غير واضح"))

	var sub db_models.VIPSubscription
	require.NoError(t, db.First(&sub, "id = ?", result.SubscriptionID).Error)
	assert.Equal(t, db_models.PaymentStatusFailed, sub.PaymentStatus)
	assert.False(t, sub.IsActive)
	assert.Equal(t, "إيصال غير واضح", sub.AdminNotes)

	var user db_models.User
	require.NoError(t, db.First(&user, "id = ?", sub.UserID).Error)
	assert.False(t, user.IsVIP)
}

func TestEnsureVIPRequiresMembership(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "regular", "regular@example.com")
	svc := newSubscriptionService(t, db, newTestBlobs(t))

	err := svc.EnsureVIP(context.Background(), user.ID.String())
	require.ErrorIs(t, err, utils.ErrVIPRequired)
}

func TestEnsureVIPDowngradesExpired(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	method := createTestPaymentMethod(t, db, country, false)
	pkg := createTestPackage(t, db, country, method)
	user := createTestUser(t, db, "merchant", "merchant@example.com")

	require.NoError(t, db.Model(user).Update("is_vip", true).Error)

	past := time.Now().AddDate(0, 0, -40).Unix()
	sub := &db_models.VIPSubscription{
		UserID:        user.ID,
		PackageID:     pkg.ID,
		StartDate:     past,
		EndDate:       time.Unix(past, 0).AddDate(0, 0, 30).Unix(),
		PaymentStatus: db_models.PaymentStatusCompleted,
		IsActive:      true,
	}
	require.NoError(t, db.Create(sub).Error)

	svc := newSubscriptionService(t, db, newTestBlobs(t))
	err := svc.EnsureVIP(context.Background(), user.ID.String())
	require.ErrorIs(t, err, utils.ErrVIPExpired)

	var refreshed db_models.User
	require.NoError(t, db.First(&refreshed, "id = ?", user.ID).Error)
	assert.False(t, refreshed.IsVIP)

	var refreshedSub db_models.VIPSubscription
	require.NoError(t, db.First(&refreshedSub, "id = ?", sub.ID).Error)
	assert.False(t, refreshedSub.IsActive)

	// A lapsed merchant stays locked out on the next request too.
	err = svc.EnsureVIP(context.Background(), user.ID.String())
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrVIPRequired) || errors.Is(err, utils.ErrVIPExpired))
}

func TestEnsureVIPActiveMembership(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	method := createTestPaymentMethod(t, db, country, false)
	pkg := createTestPackage(t, db, country, method)
	admin := createTestUser(t, db, "admin", "admin@example.com")
	svc := newSubscriptionService(t, db, newTestBlobs(t))

	result, err := svc.Subscribe(context.Background(), validSubscribeForm(pkg, method), nil)
	require.NoError(t, err)
	require.NoError(t, svc.ApproveSubscription(context.Background(), result.SubscriptionID, admin.ID.String(), ""))

	var sub db_models.VIPSubscription
	require.NoError(t, db.First(&sub, "id = ?", result.SubscriptionID).Error)

	require.NoError(t, svc.EnsureVIP(context.Background(), sub.UserID.String()))
	// Cached second check.
	require.NoError(t, svc.EnsureVIP(context.Background(), sub.UserID.String()))
}
