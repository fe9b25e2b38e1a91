package db_models

type SiteSetting struct {
	BaseModel
	Key         string `gorm:"size:50;uniqueIndex;not null"`
	Value       string `gorm:"size:255"`
	Description string `gorm:"size:255"`
}

// Setting keys used by the application.
const (
	SettingShowVIPSection = "show_vip_section"
)
