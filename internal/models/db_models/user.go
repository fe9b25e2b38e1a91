package db_models

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string
	Phone        string `gorm:"size:20"`

	IsActive bool `gorm:"default:true"`
	IsAdmin  bool `gorm:"default:false"`
	IsVIP    bool `gorm:"column:is_vip;default:false"`

	LastLogin *int64

	Store         *MerchantStore    `gorm:"foreignKey:OwnerID"`
	Ads           []Ad              `gorm:"foreignKey:UserID"`
	Subscriptions []VIPSubscription `gorm:"foreignKey:UserID"`
}
