package response_models

type PaymentMethodResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NameEn        string `json:"name_en"`
	Code          string `json:"code"`
	Icon          string `json:"icon,omitempty"`
	RequiresProof bool   `json:"requires_proof"`

	Instructions   string `json:"instructions,omitempty"`
	InstructionsEn string `json:"instructions_en,omitempty"`
	AccountName    string `json:"account_name,omitempty"`
	AccountNumber  string `json:"account_number,omitempty"`
	BankName       string `json:"bank_name,omitempty"`
	IBAN           string `json:"iban,omitempty"`
	SwiftCode      string `json:"swift_code,omitempty"`

	IsActive  bool `json:"is_active"`
	SortOrder int  `json:"sort_order"`
}

type VIPPackageResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	NameEn       string  `json:"name_en,omitempty"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	DurationDays int     `json:"duration_days"`
	CountryID    string  `json:"country_id"`

	FeaturedAdsCount  int    `json:"featured_ads_count"`
	CustomBadge       string `json:"custom_badge,omitempty"`
	PrioritySupport   bool   `json:"priority_support"`
	AdvancedAnalytics bool   `json:"advanced_analytics"`
	BoostInSearch     bool   `json:"boost_in_search"`
	IsActive          bool   `json:"is_active"`

	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`
}

type SubscriptionResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Username      string `json:"username,omitempty"`
	PackageID     string `json:"package_id"`
	PackageName   string `json:"package_name,omitempty"`
	StartDate     int64  `json:"start_date"`
	EndDate       int64  `json:"end_date"`
	PaymentStatus string `json:"payment_status"`
	PaymentMethod string `json:"payment_method,omitempty"`
	IsActive      bool   `json:"is_active"`
	ProcessedAt   *int64 `json:"processed_at,omitempty"`
	AdminNotes    string `json:"admin_notes,omitempty"`
	CreatedAt     int64  `json:"created_at"`
}

type SubscribeResponse struct {
	SubscriptionID string `json:"subscription_id"`
}

type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
	Total         int64                  `json:"total"`
}
