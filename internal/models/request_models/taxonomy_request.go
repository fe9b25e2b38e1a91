package request_models

type CategoryRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	NameEn       string `json:"name_en"`
	Description  string `json:"description"`
	ParentID     string `json:"parent_id"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	DisplayOrder int    `json:"display_order"`
}

type CountryRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	NameEn    string `json:"name_en"`
	Code      string `json:"code" binding:"required,len=2"`
	PhoneCode string `json:"phone_code"`
	Currency  string `json:"currency"`
	Flag      string `json:"flag"`
}

type StateRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	NameEn    string `json:"name_en"`
	CountryID string `json:"country_id" binding:"required"`
}

type CityRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	NameEn  string `json:"name_en"`
	StateID string `json:"state_id" binding:"required"`
}
