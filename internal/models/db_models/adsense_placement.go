package db_models

type AdSenseType string

const (
	AdSenseBanner  AdSenseType = "banner"
	AdSenseSidebar AdSenseType = "sidebar"
	AdSenseContent AdSenseType = "content"
	AdSenseFooter  AdSenseType = "footer"
)

// AdSensePlacement holds an embeddable ad snippet and where it renders.
type AdSensePlacement struct {
	BaseModel
	Name        string `gorm:"size:100;not null"`
	Description string
	AdType      AdSenseType `gorm:"size:20;not null"`
	HTMLCode    string      `gorm:"not null"`

	DisplayOrder int `gorm:"default:0"`
	StartDate    *int64
	EndDate      *int64
	IsActive     bool `gorm:"default:true"`
}
