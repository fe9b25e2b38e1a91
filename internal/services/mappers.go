package services

import (
	"encoding/json"

	"adsouq/internal/models/db_models"
	"adsouq/internal/models/response_models"
	"adsouq/pkg/utils"
)

func toAdResponse(ad *db_models.Ad) response_models.AdResponse {
	var images []string
	if len(ad.Images) > 0 {
		_ = json.Unmarshal(ad.Images, &images)
	}

	resp := response_models.AdResponse{
		ID:           ad.ID.String(),
		Title:        ad.Title,
		Slug:         utils.Slugify(ad.Title),
		Description:  ad.Description,
		Price:        ad.Price,
		Currency:     ad.Currency,
		Images:       images,
		CategoryID:   ad.CategoryID.String(),
		CategoryName: ad.Category.Name,
		CountryID:    ad.CountryID.String(),
		ContactPhone: ad.ContactPhone,
		ContactEmail: ad.ContactEmail,
		IsFeatured:   ad.IsFeatured,
		ViewsCount:   ad.ViewsCount,
		CreatedAt:    ad.CreatedAt,
	}

	if ad.StateID != nil {
		resp.StateID = ad.StateID.String()
	}
	if ad.CityID != nil {
		resp.CityID = ad.CityID.String()
	}
	if ad.StoreID != nil {
		resp.StoreID = ad.StoreID.String()
	}

	return resp
}

func toAdResponses(ads []db_models.Ad) []response_models.AdResponse {
	out := make([]response_models.AdResponse, 0, len(ads))
	for i := range ads {
		out = append(out, toAdResponse(&ads[i]))
	}
	return out
}

func toCategoryResponse(c *db_models.Category) response_models.CategoryResponse {
	return response_models.CategoryResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		NameEn:       c.NameEn,
		Slug:         c.Slug,
		Icon:         c.Icon,
		Color:        c.Color,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
	}
}

func toCountryResponse(c *db_models.Country) response_models.CountryResponse {
	return response_models.CountryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		NameEn:    c.NameEn,
		Code:      c.Code,
		PhoneCode: c.PhoneCode,
		Currency:  c.Currency,
		IsActive:  c.IsActive,
	}
}

func toPaymentMethodResponse(m *db_models.PaymentMethod) response_models.PaymentMethodResponse {
	return response_models.PaymentMethodResponse{
		ID:             m.ID.String(),
		Name:           m.Name,
		NameEn:         m.NameEn,
		Code:           m.Code,
		Icon:           m.Icon,
		RequiresProof:  m.RequiresProof,
		Instructions:   m.Instructions,
		InstructionsEn: m.InstructionsEn,
		AccountName:    m.AccountName,
		AccountNumber:  m.AccountNumber,
		BankName:       m.BankName,
		IBAN:           m.IBAN,
		SwiftCode:      m.SwiftCode,
		IsActive:       m.IsActive,
		SortOrder:      m.SortOrder,
	}
}

func toPackageResponse(pkg *db_models.VIPPackage) response_models.VIPPackageResponse {
	methods := make([]response_models.PaymentMethodResponse, 0, len(pkg.PaymentMethods))
	for i := range pkg.PaymentMethods {
		if pkg.PaymentMethods[i].IsActive {
			methods = append(methods, toPaymentMethodResponse(&pkg.PaymentMethods[i]))
		}
	}

	return response_models.VIPPackageResponse{
		ID:                pkg.ID.String(),
		Name:              pkg.Name,
		NameEn:            pkg.NameEn,
		Description:       pkg.Description,
		Price:             pkg.Price,
		Currency:          pkg.Currency,
		DurationDays:      pkg.DurationDays,
		CountryID:         pkg.CountryID.String(),
		FeaturedAdsCount:  pkg.FeaturedAdsCount,
		CustomBadge:       pkg.CustomBadge,
		PrioritySupport:   pkg.PrioritySupport,
		AdvancedAnalytics: pkg.AdvancedAnalytics,
		BoostInSearch:     pkg.BoostInSearch,
		IsActive:          pkg.IsActive,
		PaymentMethods:    methods,
	}
}

func toSubscriptionResponse(sub *db_models.VIPSubscription) response_models.SubscriptionResponse {
	return response_models.SubscriptionResponse{
		ID:            sub.ID.String(),
		UserID:        sub.UserID.String(),
		Username:      sub.User.Username,
		PackageID:     sub.PackageID.String(),
		PackageName:   sub.Package.Name,
		StartDate:     sub.StartDate,
		EndDate:       sub.EndDate,
		PaymentStatus: string(sub.PaymentStatus),
		PaymentMethod: sub.PaymentMethod,
		IsActive:      sub.IsActive,
		ProcessedAt:   sub.ProcessedAt,
		AdminNotes:    sub.AdminNotes,
		CreatedAt:     sub.CreatedAt,
	}
}

func toAdSenseResponse(p *db_models.AdSensePlacement) response_models.AdSenseResponse {
	return response_models.AdSenseResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		AdType:       string(p.AdType),
		HTMLCode:     p.HTMLCode,
		DisplayOrder: p.DisplayOrder,
		IsActive:     p.IsActive,
	}
}

func toStoreResponse(store *db_models.MerchantStore, isOwner bool) response_models.StoreResponse {
	return response_models.StoreResponse{
		ID:          store.ID.String(),
		OwnerID:     store.OwnerID.String(),
		Name:        store.Name,
		Description: store.Description,
		LogoURL:     store.LogoURL,
		BannerURL:   store.BannerURL,
		IsOwner:     isOwner,
		Ads:         toAdResponses(store.Ads),
	}
}
