package main

import (
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"adsouq/internal/infra"
	"adsouq/internal/models/db_models"
	"adsouq/pkg/config"
	"adsouq/pkg/utils"
)

// Seeds the database with the baseline records a fresh deployment needs:
// the admin account and its store, the default taxonomy, one country with
// states, bank-transfer payment methods and a starter VIP package.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db := infra.InitPostgresql(cfg)
	defer infra.ClosePostgresql(db)

	if err := infra.AutoMigrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Database seeded successfully")
}

func seed(db *gorm.DB) error {
	if _, err := seedAdmin(db); err != nil {
		return err
	}

	country, err := seedCountry(db)
	if err != nil {
		return err
	}

	if err := seedCategories(db); err != nil {
		return err
	}

	methods, err := seedPaymentMethods(db, country)
	if err != nil {
		return err
	}

	if err := seedPackage(db, country, methods); err != nil {
		return err
	}

	return seedSettings(db)
}

func seedAdmin(db *gorm.DB) (*db_models.User, error) {
	var admin db_models.User
	err := db.First(&admin, "username = ?", "admin").Error
	if err == nil {
		return &admin, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return nil, err
	}

	admin = db_models.User{
		Username:     "admin",
		Email:        "admin@adsouq.local",
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return nil, err
	}

	store := db_models.MerchantStore{
		OwnerID: admin.ID,
		Name:    "متجر الإدارة",
	}
	if err := db.Create(&store).Error; err != nil {
		return nil, err
	}

	log.Println("Created admin account (admin / admin123) - change the password immediately")
	return &admin, nil
}

func seedCountry(db *gorm.DB) (*db_models.Country, error) {
	var country db_models.Country
	err := db.First(&country, "code = ?", "SA").Error
	if err == nil {
		return &country, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	country = db_models.Country{
		Name:      "السعودية",
		NameEn:    "Saudi Arabia",
		Code:      "SA",
		PhoneCode: "+966",
		Currency:  "SAR",
		Flag:      "🇸🇦",
		IsActive:  true,
	}
	if err := db.Create(&country).Error; err != nil {
		return nil, err
	}

	states := []db_models.State{
		{Name: "الرياض", NameEn: "Riyadh", CountryID: country.ID, IsActive: true},
		{Name: "مكة المكرمة", NameEn: "Makkah", CountryID: country.ID, IsActive: true},
		{Name: "المنطقة الشرقية", NameEn: "Eastern Province", CountryID: country.ID, IsActive: true},
		{Name: "المدينة المنورة", NameEn: "Madinah", CountryID: country.ID, IsActive: true},
	}
	if err := db.Create(&states).Error; err != nil {
		return nil, err
	}

	return &country, nil
}

func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&db_models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []db_models.Category{
		{Name: "سيارات", NameEn: "Cars", Icon: "fa-car", Color: "#e74c3c", DisplayOrder: 1, IsActive: true},
		{Name: "عقارات", NameEn: "Real Estate", Icon: "fa-home", Color: "#3498db", DisplayOrder: 2, IsActive: true},
		{Name: "إلكترونيات", NameEn: "Electronics", Icon: "fa-mobile", Color: "#9b59b6", DisplayOrder: 3, IsActive: true},
		{Name: "أثاث", NameEn: "Furniture", Icon: "fa-couch", Color: "#e67e22", DisplayOrder: 4, IsActive: true},
		{Name: "وظائف", NameEn: "Jobs", Icon: "fa-briefcase", Color: "#2ecc71", DisplayOrder: 5, IsActive: true},
		{Name: "خدمات", NameEn: "Services", Icon: "fa-wrench", Color: "#1abc9c", DisplayOrder: 6, IsActive: true},
		{Name: "أزياء", NameEn: "Fashion", Icon: "fa-tshirt", Color: "#f39c12", DisplayOrder: 7, IsActive: true},
		{Name: "حيوانات", NameEn: "Animals", Icon: "fa-paw", Color: "#95a5a6", DisplayOrder: 8, IsActive: true},
	}
	for i := range categories {
		categories[i].Slug = utils.Slugify(categories[i].NameEn)
	}

	return db.Create(&categories).Error
}

func seedPaymentMethods(db *gorm.DB, country *db_models.Country) ([]db_models.PaymentMethod, error) {
	var methods []db_models.PaymentMethod
	if err := db.Where("country_id = ?", country.ID).Find(&methods).Error; err != nil {
		return nil, err
	}
	if len(methods) > 0 {
		return methods, nil
	}

	methods = []db_models.PaymentMethod{
		{
			Name:           "تحويل بنكي",
			NameEn:         "Bank Transfer",
			Code:           "bank_transfer",
			Icon:           "fa-university",
			CountryID:      country.ID,
			RequiresProof:  true,
			Instructions:   "حوّل المبلغ إلى الحساب أدناه ثم أرفق إيصال التحويل",
			InstructionsEn: "Transfer the amount to the account below and attach the receipt",
			AccountName:    "ADSOUQ Ltd",
			AccountNumber:  "1234567890",
			BankName:       "البنك الأهلي",
			IBAN:           "SA0000000000001234567890",
			IsActive:       true,
			SortOrder:      1,
		},
		{
			Name:           "STC Pay",
			NameEn:         "STC Pay",
			Code:           "stc_pay",
			Icon:           "fa-mobile-alt",
			CountryID:      country.ID,
			RequiresProof:  true,
			Instructions:   "حوّل عبر STC Pay إلى الرقم أدناه ثم أرفق لقطة الشاشة",
			InstructionsEn: "Send via STC Pay to the number below and attach a screenshot",
			AccountNumber:  "0501234567",
			IsActive:       true,
			SortOrder:      2,
		},
	}
	if err := db.Create(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func seedPackage(db *gorm.DB, country *db_models.Country, methods []db_models.PaymentMethod) error {
	var count int64
	if err := db.Model(&db_models.VIPPackage{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	pkg := db_models.VIPPackage{
		Name:             "باقة التاجر",
		NameEn:           "Merchant Package",
		Description:      "متجر خاص، إعلانات مميزة وأولوية في الظهور",
		Price:            99,
		Currency:         country.Currency,
		DurationDays:     30,
		CountryID:        country.ID,
		FeaturedAdsCount: 5,
		CustomBadge:      "تاجر موثوق",
		PrioritySupport:  true,
		BoostInSearch:    true,
		Features:         datatypes.JSON([]byte(`["متجر خاص","شارة تاجر موثوق","5 إعلانات مميزة"]`)),
		IsActive:         true,
	}
	if err := db.Create(&pkg).Error; err != nil {
		return err
	}

	return db.Model(&pkg).Association("PaymentMethods").Replace(methods)
}

func seedSettings(db *gorm.DB) error {
	var setting db_models.SiteSetting
	err := db.First(&setting, "key = ?", db_models.SettingShowVIPSection).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	return db.Create(&db_models.SiteSetting{
		Key:         db_models.SettingShowVIPSection,
		Value:       "true",
		Description: "Toggle the VIP section on the public pages",
	}).Error
}
