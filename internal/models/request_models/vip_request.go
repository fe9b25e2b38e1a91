package request_models

type VIPPackageRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	NameEn      string `json:"name_en"`
	Description string `json:"description"`

	Price        float64 `json:"price" binding:"required,gte=0"`
	Currency     string  `json:"currency" binding:"required,len=3"`
	DurationDays int     `json:"duration_days" binding:"required,gt=0"`
	CountryID    string  `json:"country_id" binding:"required"`

	FeaturedAdsCount  int    `json:"featured_ads_count"`
	CustomBadge       string `json:"custom_badge"`
	PrioritySupport   bool   `json:"priority_support"`
	AdvancedAnalytics bool   `json:"advanced_analytics"`
	BoostInSearch     bool   `json:"boost_in_search"`

	PaymentMethodIDs []string `json:"payment_methods" binding:"required"`
}

type PaymentMethodRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	NameEn    string `json:"name_en" binding:"required,max=100"`
	Code      string `json:"code" binding:"required,max=50"`
	Icon      string `json:"icon"`
	CountryID string `json:"country_id" binding:"required"`

	RequiresProof  bool   `json:"requires_proof"`
	Instructions   string `json:"instructions"`
	InstructionsEn string `json:"instructions_en"`

	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	IBAN          string `json:"iban"`
	SwiftCode     string `json:"swift_code"`

	IsActive  bool `json:"is_active"`
	SortOrder int  `json:"sort_order"`
}
