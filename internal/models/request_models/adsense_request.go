package request_models

type AdSenseRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	AdType      string `json:"ad_type" binding:"required,oneof=banner sidebar content footer"`
	HTMLCode    string `json:"html_code" binding:"required"`

	DisplayOrder int    `json:"display_order"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	IsActive     bool   `json:"is_active"`
}
