package response_models

type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NameEn       string `json:"name_en,omitempty"`
	Slug         string `json:"slug,omitempty"`
	Icon         string `json:"icon,omitempty"`
	Color        string `json:"color,omitempty"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

type CountryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NameEn    string `json:"name_en,omitempty"`
	Code      string `json:"code"`
	PhoneCode string `json:"phone_code,omitempty"`
	Currency  string `json:"currency,omitempty"`
	IsActive  bool   `json:"is_active"`
}

type StateResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"name_en,omitempty"`
}

type CityResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"name_en,omitempty"`
}

// StateListResponse carries the country phone code alongside its states so
// the client prefills the contact number prefix in one round trip.
type StateListResponse struct {
	States           []StateResponse `json:"states"`
	CountryPhoneCode string          `json:"country_phone_code"`
}
