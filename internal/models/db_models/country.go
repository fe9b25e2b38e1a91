package db_models

type Country struct {
	BaseModel
	Name      string `gorm:"size:100;not null"`
	NameEn    string `gorm:"size:100"`
	Code      string `gorm:"size:2;uniqueIndex"`
	PhoneCode string `gorm:"size:5"`
	Currency  string `gorm:"size:3"`
	Flag      string `gorm:"size:50"`

	IsActive  bool `gorm:"default:true"`
	SortOrder int  `gorm:"default:0"`

	States []State `gorm:"foreignKey:CountryID"`
}
