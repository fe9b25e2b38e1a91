package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"adsouq/internal/infra"
	"adsouq/internal/models/db_models"
	"adsouq/internal/repositories"
	"adsouq/pkg/storage"
	"adsouq/pkg/utils"
)

// newTestDB opens a per-test in-memory database. The shared cache keeps the
// schema visible across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))

	return db
}

func newTestBlobs(t *testing.T) storage.BlobStore {
	t.Helper()

	blobs, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return blobs
}

func createTestCountry(t *testing.T, db *gorm.DB) *db_models.Country {
	t.Helper()

	country := &db_models.Country{
		Name:      "السعودية",
		NameEn:    "Saudi Arabia",
		Code:      "SA",
		PhoneCode: "+966",
		Currency:  "SAR",
		IsActive:  true,
	}
	require.NoError(t, db.Create(country).Error)
	return country
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *db_models.Category {
	t.Helper()

	category := &db_models.Category{
		Name:     name,
		Slug:     utils.Slugify(name),
		IsActive: true,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createTestUser(t *testing.T, db *gorm.DB, username, email string) *db_models.User {
	t.Helper()

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	user := &db_models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPaymentMethod(t *testing.T, db *gorm.DB, country *db_models.Country, requiresProof bool) *db_models.PaymentMethod {
	t.Helper()

	method := &db_models.PaymentMethod{
		Name:          "تحويل بنكي",
		NameEn:        "Bank Transfer",
		Code:          "bank_transfer",
		CountryID:     country.ID,
		RequiresProof: requiresProof,
		IsActive:      true,
	}
	require.NoError(t, db.Create(method).Error)
	return method
}

func createTestPackage(t *testing.T, db *gorm.DB, country *db_models.Country, methods ...*db_models.PaymentMethod) *db_models.VIPPackage {
	t.Helper()

	pkg := &db_models.VIPPackage{
		Name:         "باقة التاجر",
		NameEn:       "Merchant Package",
		Price:        99,
		Currency:     "SAR",
		DurationDays: 30,
		CountryID:    country.ID,
		IsActive:     true,
	}
	require.NoError(t, db.Create(pkg).Error)

	linked := make([]db_models.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		linked = append(linked, *m)
	}
	require.NoError(t, db.Model(pkg).Association("PaymentMethods").Replace(linked))
	pkg.PaymentMethods = linked
	return pkg
}

func createTestAd(t *testing.T, db *gorm.DB, user *db_models.User, category *db_models.Category, country *db_models.Country, title string, approved bool) *db_models.Ad {
	t.Helper()

	ad := &db_models.Ad{
		Title:       title,
		Description: "وصف " + title,
		Price:       100,
		Currency:    "SAR",
		UserID:      user.ID,
		CategoryID:  category.ID,
		CountryID:   country.ID,
		IsApproved:  approved,
		IsActive:    true,
	}
	require.NoError(t, db.Create(ad).Error)
	return ad
}

// makeFileHeader builds a real multipart file part the way gin hands one to
// a controller.
func makeFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(len(content)) + 4096)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File[field][0]
}

func newAdRepos(db *gorm.DB) (repositories.AdRepository, repositories.UserRepository, repositories.CategoryRepository, repositories.LocationRepository, repositories.AdSenseRepository, repositories.SettingRepository) {
	return repositories.NewAdRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewCategoryRepository(db),
		repositories.NewLocationRepository(db),
		repositories.NewAdSenseRepository(db),
		repositories.NewSettingRepository(db)
}
