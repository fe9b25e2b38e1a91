package controllers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adsouq/internal/models/request_models"
	"adsouq/internal/services"
	"adsouq/pkg/utils"
)

type AdController struct {
	adService services.AdServiceInterface
}

func NewAdController(adService services.AdServiceInterface) *AdController {
	return &AdController{
		adService: adService,
	}
}

// Home godoc
// @Summary Landing page feed
// @Description Categories, featured and recent ads, countries and ad placements in one payload
// @Tags Ads
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router / [get]
func (a *AdController) Home(c *gin.Context) {
	feed, err := a.adService.Home(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feed, "Home feed fetched successfully")
}

// GetAd godoc
// @Summary Get one ad with related listings
// @Tags Ads
// @Produce json
// @Param id path string true "Ad ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /ads/{id} [get]
func (a *AdController) GetAd(c *gin.Context) {
	adID := c.Param("id")
	if adID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Ad ID is required")
		return
	}

	detail, err := a.adService.GetAdDetail(c.Request.Context(), adID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Ad fetched successfully")
}

// Search godoc
// @Summary Search approved ads
// @Tags Ads
// @Produce json
// @Param q query string false "Keyword matched against title and description"
// @Param category query string false "Category ID"
// @Param country_id query string false "Country ID"
// @Success 200 {object} utils.APIResponse
// @Router /ads/search [get]
func (a *AdController) Search(c *gin.Context) {
	var query request_models.SearchAdsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	results, err := a.adService.Search(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Ads fetched successfully")
}

// ListByCategory godoc
// @Summary List approved ads in a category
// @Tags Ads
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /categories/{id}/ads [get]
func (a *AdController) ListByCategory(c *gin.Context) {
	categoryID := c.Param("id")
	if categoryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Category ID is required")
		return
	}

	ads, err := a.adService.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ads, "Ads fetched successfully")
}

// CreateAd godoc
// @Summary Submit a new ad
// @Description Accepts a multipart form with up to ten images. Anonymous submitters get an account provisioned from their contact phone.
// @Tags Ads
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /ads [post]
func (a *AdController) CreateAd(c *gin.Context) {
	var form request_models.CreateAdForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	var files []*multipart.FileHeader
	if multipartForm, err := c.MultipartForm(); err == nil && multipartForm != nil {
		files = multipartForm.File["images"]
	}
	if len(files) > 10 {
		files = files[:10]
	}

	result, err := a.adService.CreateAd(c.Request.Context(), form, files, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Ad submitted successfully and is awaiting review")
}

// ListForModeration godoc
// @Summary List ads for the moderation queue
// @Tags Admin
// @Produce json
// @Param status query string false "pending, approved or all" default(pending)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/ads [get]
func (a *AdController) ListForModeration(c *gin.Context) {
	status := c.DefaultQuery("status", "pending")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	ads, err := a.adService.ListForModeration(c.Request.Context(), status, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ads, "Ads fetched successfully")
}

// ApproveAd godoc
// @Summary Approve a pending ad
// @Tags Admin
// @Produce json
// @Param id path string true "Ad ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/ads/{id}/approve [post]
func (a *AdController) ApproveAd(c *gin.Context) {
	if err := a.adService.ApproveAd(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Ad approved successfully")
}

// RejectAd godoc
// @Summary Reject an ad and hide it from listings
// @Tags Admin
// @Produce json
// @Param id path string true "Ad ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/ads/{id}/reject [post]
func (a *AdController) RejectAd(c *gin.Context) {
	if err := a.adService.RejectAd(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Ad rejected successfully")
}

// ToggleFeatured godoc
// @Summary Flip the featured flag on an ad
// @Tags Admin
// @Produce json
// @Param id path string true "Ad ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/ads/{id}/feature [post]
func (a *AdController) ToggleFeatured(c *gin.Context) {
	featured, err := a.adService.ToggleFeatured(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"is_featured": featured}, "Ad updated successfully")
}

// DeleteAd godoc
// @Summary Delete an ad and its images
// @Tags Admin
// @Produce json
// @Param id path string true "Ad ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/ads/{id} [delete]
func (a *AdController) DeleteAd(c *gin.Context) {
	if err := a.adService.DeleteAd(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Ad deleted successfully")
}
