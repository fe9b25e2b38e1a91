package services

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"adsouq/internal/models/db_models"
	"adsouq/internal/models/request_models"
	"adsouq/pkg/storage"
	"adsouq/pkg/utils"
)

func newAdService(t *testing.T, db *gorm.DB, blobs storage.BlobStore) AdServiceInterface {
	t.Helper()

	adRepo, userRepo, categoryRepo, locationRepo, adSenseRepo, settingRepo := newAdRepos(db)
	return NewAdService(adRepo, userRepo, categoryRepo, locationRepo, adSenseRepo, settingRepo, blobs)
}

func validAdForm(category *db_models.Category, country *db_models.Country) request_models.CreateAdForm {
	return request_models.CreateAdForm{
		Title:        "سيارة للبيع",
		Description:  "سيارة بحالة ممتازة",
		Price:        "15000",
		CategoryID:   category.ID.String(),
		CountryID:    country.ID.String(),
		ContactPhone: "+966501234567",
	}
}

func TestCreateAdRequiresTitle(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	category := createTestCategory(t, db, "سيارات")
	svc := newAdService(t, db, newTestBlobs(t))

	form := validAdForm(category, country)
	form.Title = ""

	_, err := svc.CreateAd(context.Background(), form, nil, "")
	var fieldErr *utils.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "title", fieldErr.Field)
}

func TestCreateAdRejectsBadPrice(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	category := createTestCategory(t, db, "سيارات")
	svc := newAdService(t, db, newTestBlobs(t))

	form := validAdForm(category, country)
	form.Price = "abc"

	_, err := svc.CreateAd(context.Background(), form, nil, "")
	require.ErrorIs(t, err, utils.ErrInvalidPrice)

	form.Price = "-5"
	_, err = svc.CreateAd(context.Background(), form, nil, "")
	require.ErrorIs(t, err, utils.ErrInvalidPrice)
}

func TestCreateAdProvisionsAccountFromPhone(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	category := createTestCategory(t, db, "سيارات")
	svc := newAdService(t, db, newTestBlobs(t))

	result, err := svc.CreateAd(context.Background(), validAdForm(category, country), nil, "")
	require.NoError(t, err)

	assert.True(t, result.AccountCreated)
	assert.Equal(t, "user_966501234567", result.Username)
	assert.NotEmpty(t, result.Password)
	assert.True(t, strings.HasPrefix(result.AdURL, "/ad/"+result.AdID+"/"))

	var ad db_models.Ad
	require.NoError(t, db.First(&ad, "id = ?", result.AdID).Error)
	assert.False(t, ad.IsApproved, "new submissions wait for moderation")
	assert.True(t, ad.IsActive)

	var user db_models.User
	require.NoError(t, db.First(&user, "username = ?", "user_966501234567").Error)
	assert.Equal(t, user.ID, ad.UserID)
	assert.Equal(t, "user_966501234567@temp.com", user.Email)
}

func TestCreateAdReusesAccountByPhone(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	category := createTestCategory(t, db, "سيارات")
	svc := newAdService(t, db, newTestBlobs(t))

	existing := createTestUser(t, db, "seller", "seller@example.com")
	require.NoError(t, db.Model(existing).Update("phone", "+966501234567").Error)

	result, err := svc.CreateAd(context.Background(), validAdForm(category, country), nil, "")
	require.NoError(t, err)
	assert.False(t, result.AccountCreated)

	var ad db_models.Ad
	require.NoError(t, db.First(&ad, "id = ?", result.AdID).Error)
	assert.Equal(t, existing.ID, ad.UserID)
}

func TestCreateAdStoresImages(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	category := createTestCategory(t, db, "سيارات")
	blobs := newTestBlobs(t)
	svc := newAdService(t, db, blobs)

	image := makeFileHeader(t, "images", "car.jpg", []byte("jpeg-bytes"))
	result, err := svc.CreateAd(context.Background(), validAdForm(category, country), []*multipart.FileHeader{image}, "")
	require.NoError(t, err)

	var ad db_models.Ad
	require.NoError(t, db.First(&ad, "id = ?", result.AdID).Error)

	var keys []string
	require.NoError(t, json.Unmarshal(ad.Images, &keys))
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "ad_"))
	assert.True(t, strings.HasSuffix(keys[0], ".jpg"))
	assert.True(t, blobs.Exists(keys[0]))
}

func TestGetAdDetailCountsViews(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	category := createTestCategory(t, db, "سيارات")
	user := createTestUser(t, db, "seller", "seller@example.com")
	ad := createTestAd(t, db, user, category, country, "سيارة للبيع", true)
	svc := newAdService(t, db, newTestBlobs(t))

	detail, err := svc.GetAdDetail(context.Background(), ad.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 1, detail.Ad.ViewsCount)

	detail, err = svc.GetAdDetail(context.Background(), ad.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 2, detail.Ad.ViewsCount)
}

func TestGetAdDetailRelatedAds(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	category := createTestCategory(t, db, "سيارات")
	other := createTestCategory(t, db, "عقارات")
	user := createTestUser(t, db, "seller", "seller@example.com")

	ad := createTestAd(t, db, user, category, country, "سيارة أولى", true)
	createTestAd(t, db, user, category, country, "سيارة ثانية", true)
	createTestAd(t, db, user, category, country, "سيارة غير معتمدة", false)
	createTestAd(t, db, user, other, country, "شقة للإيجار", true)

	svc := newAdService(t, db, newTestBlobs(t))
	detail, err := svc.GetAdDetail(context.Background(), ad.ID.String())
	require.NoError(t, err)

	require.Len(t, detail.RelatedAds, 1, "related excludes the ad itself, other categories and unapproved ads")
	assert.Equal(t, "سيارة ثانية", detail.RelatedAds[0].Title)
}

func TestSearchFiltersByKeywordAndCategory(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	cars := createTestCategory(t, db, "سيارات")
	flats := createTestCategory(t, db, "عقارات")
	user := createTestUser(t, db, "seller", "seller@example.com")

	createTestAd(t, db, user, cars, country, "تويوتا كامري", true)
	createTestAd(t, db, user, cars, country, "هوندا أكورد", true)
	createTestAd(t, db, user, flats, country, "شقة تويوتا", true)
	createTestAd(t, db, user, cars, country, "تويوتا غير معتمدة", false)

	svc := newAdService(t, db, newTestBlobs(t))

	results, err := svc.Search(context.Background(), request_models.SearchAdsQuery{
		Query: "تويوتا", CategoryID: cars.ID.String(), Page: 1, PageSize: 12,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, results.Total)
	require.Len(t, results.Ads, 1)
	assert.Equal(t, "تويوتا كامري", results.Ads[0].Title)

	results, err = svc.Search(context.Background(), request_models.SearchAdsQuery{
		Query: "تويوتا", Page: 1, PageSize: 12,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, results.Total)
}

func TestModerationLifecycle(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	category := createTestCategory(t, db, "سيارات")
	user := createTestUser(t, db, "seller", "seller@example.com")
	ad := createTestAd(t, db, user, category, country, "سيارة للبيع", false)
	svc := newAdService(t, db, newTestBlobs(t))

	pending, err := svc.ListForModeration(context.Background(), "pending", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pending.Total)

	require.NoError(t, svc.ApproveAd(context.Background(), ad.ID.String()))

	var refreshed db_models.Ad
	require.NoError(t, db.First(&refreshed, "id = ?", ad.ID).Error)
	assert.True(t, refreshed.IsApproved)

	featured, err := svc.ToggleFeatured(context.Background(), ad.ID.String())
	require.NoError(t, err)
	assert.True(t, featured)

	require.NoError(t, svc.RejectAd(context.Background(), ad.ID.String()))
	require.NoError(t, db.First(&refreshed, "id = ?", ad.ID).Error)
	assert.False(t, refreshed.IsApproved)
	assert.False(t, refreshed.IsActive)
}

func TestDeleteAdRemovesImages(t *testing.T) {
	db := newTestDB(t)
	country := createTestCountry(t, db)
	category := createTestCategory(t, db, "سيارات")
	user := createTestUser(t, db, "seller", "seller@example.com")
	blobs := newTestBlobs(t)
	svc := newAdService(t, db, blobs)

	require.NoError(t, blobs.Save("ad_test.jpg", strings.NewReader("jpeg-bytes")))

	ad := createTestAd(t, db, user, category, country, "سيارة للبيع", true)
	keys, _ := json.Marshal([]string{"ad_test.jpg"})
	require.NoError(t, db.Model(ad).Update("images", keys).Error)

	require.NoError(t, svc.DeleteAd(context.Background(), ad.ID.String()))

	assert.False(t, blobs.Exists("ad_test.jpg"))
	var count int64
	require.NoError(t, db.Model(&db_models.Ad{}).Where("id = ?", ad.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteAdNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newAdService(t, db, newTestBlobs(t))

	err := svc.DeleteAd(context.Background(), "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed")
	require.ErrorIs(t, err, utils.ErrAdNotFound)
}
