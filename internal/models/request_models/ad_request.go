package request_models

// CreateAdForm is the multipart form posted to /api/ads. Fields are
// validated by the service so each failure carries its own localized
// message.
type CreateAdForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Currency    string `form:"currency"`

	CategoryID string `form:"category_id"`
	CountryID  string `form:"country_id"`
	StateID    string `form:"state_id"`
	CityID     string `form:"city_id"`

	ContactPhone string `form:"contact_phone"`
	ContactEmail string `form:"contact_email"`
}

type SearchAdsQuery struct {
	Query      string `form:"q"`
	CategoryID string `form:"category"`
	CountryID  string `form:"country_id"`
	StateID    string `form:"state_id"`
	CityID     string `form:"city_id"`
	Page       int    `form:"page,default=1"`
	PageSize   int    `form:"pageSize,default=12"`
}
