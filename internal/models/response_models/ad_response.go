package response_models

type AdResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	Images       []string `json:"images"`
	CategoryID   string   `json:"category_id"`
	CategoryName string   `json:"category_name,omitempty"`
	CountryID    string   `json:"country_id"`
	StateID      string   `json:"state_id,omitempty"`
	CityID       string   `json:"city_id,omitempty"`
	StoreID      string   `json:"store_id,omitempty"`
	ContactPhone string   `json:"contact_phone,omitempty"`
	ContactEmail string   `json:"contact_email,omitempty"`
	IsFeatured   bool     `json:"is_featured"`
	ViewsCount   int64    `json:"views_count"`
	CreatedAt    int64    `json:"created_at"`
}

type AdDetailResponse struct {
	Ad         AdResponse   `json:"ad"`
	RelatedAds []AdResponse `json:"related_ads"`
}

type CreateAdResponse struct {
	AdID  string `json:"ad_id"`
	AdURL string `json:"ad_url"`

	AccountCreated bool   `json:"account_created,omitempty"`
	Username       string `json:"username,omitempty"`
	Password       string `json:"password,omitempty"`
}

type AdListResponse struct {
	Ads      []AdResponse `json:"ads"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Total    int64        `json:"total"`
}
