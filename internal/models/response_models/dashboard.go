package response_models

type DashboardResponse struct {
	TotalAds    int64        `json:"total_ads"`
	PendingAds  int64        `json:"pending_ads"`
	TotalUsers  int64        `json:"total_users"`
	FeaturedAds int64        `json:"featured_ads"`
	RecentAds   []AdResponse `json:"recent_ads"`
}

type VIPDashboardResponse struct {
	TotalSubscriptions   int64                  `json:"total_subscriptions"`
	PendingSubscriptions int64                  `json:"pending_subscriptions"`
	ActiveSubscriptions  int64                  `json:"active_subscriptions"`
	TotalPackages        int64                  `json:"total_packages"`
	RecentSubscriptions  []SubscriptionResponse `json:"recent_subscriptions"`
}
