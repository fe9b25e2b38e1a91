package response_models

type StoreResponse struct {
	ID          string       `json:"id"`
	OwnerID     string       `json:"owner_id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	LogoURL     string       `json:"logo_url,omitempty"`
	BannerURL   string       `json:"banner_url,omitempty"`
	IsOwner     bool         `json:"is_owner"`
	Ads         []AdResponse `json:"ads"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
