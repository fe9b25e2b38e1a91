package response_models

type LoginResponse struct {
	Token string `json:"token"`
	IsVIP bool   `json:"is_vip"`
}

type AdSenseResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	AdType       string `json:"ad_type"`
	HTMLCode     string `json:"html_code"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

type HomeResponse struct {
	Categories  []CategoryResponse           `json:"categories"`
	FeaturedAds []AdResponse                 `json:"featured_ads"`
	RecentAds   []AdResponse                 `json:"recent_ads"`
	Countries   []CountryResponse            `json:"countries"`
	AdSense     map[string][]AdSenseResponse `json:"adsense_ads"`
	ShowVIP     bool                         `json:"show_vip_section"`
}
