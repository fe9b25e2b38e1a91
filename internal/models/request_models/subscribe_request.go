package request_models

// SubscribeForm is the multipart form posted to /vip/subscribe. The proof
// file itself travels separately as a multipart file part.
type SubscribeForm struct {
	PackageID       string `form:"package_id"`
	PaymentMethodID string `form:"payment_method"`

	CustomerName  string `form:"customer_name"`
	CustomerEmail string `form:"customer_email"`
	CustomerPhone string `form:"customer_phone"`

	TransferReference string `form:"transfer_reference"`
	TransferDate      string `form:"transfer_date"`

	StateID string `form:"state_id"`
	CityID  string `form:"city_id"`
}

type RejectSubscriptionRequest struct {
	Reason string `form:"rejection_reason" json:"rejection_reason"`
}
