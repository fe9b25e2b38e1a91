package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adsouq/internal/models/request_models"
	"adsouq/internal/services"
	"adsouq/pkg/utils"
)

type StoreController struct {
	storeService services.StoreServiceInterface
}

func NewStoreController(storeService services.StoreServiceInterface) *StoreController {
	return &StoreController{
		storeService: storeService,
	}
}

// GetStore godoc
// @Summary View a merchant storefront
// @Tags Stores
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /stores/{id} [get]
func (s *StoreController) GetStore(c *gin.Context) {
	storeID := c.Param("id")
	if storeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Store ID is required")
		return
	}

	store, err := s.storeService.GetStore(c.Request.Context(), storeID, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, store, "Store fetched successfully")
}

// GetOwnStore godoc
// @Summary Get the caller's storefront
// @Tags Stores
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /merchant/store [get]
func (s *StoreController) GetOwnStore(c *gin.Context) {
	store, err := s.storeService.GetOwnStore(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, store, "Store fetched successfully")
}

// UpdateStore godoc
// @Summary Update storefront name and description
// @Tags Stores
// @Accept json
// @Produce json
// @Param request body request_models.UpdateStoreRequest true "Store payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /merchant/store [put]
func (s *StoreController) UpdateStore(c *gin.Context) {
	var req request_models.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.storeService.UpdateStore(c.Request.Context(), c.GetString("user_id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Store updated successfully")
}

// UploadLogo godoc
// @Summary Upload the storefront logo
// @Tags Stores
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /merchant/store/logo [post]
func (s *StoreController) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Logo file is required")
		return
	}

	result, err := s.storeService.UploadLogo(c.Request.Context(), c.GetString("user_id"), file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Logo uploaded successfully")
}

// UploadBanner godoc
// @Summary Upload the storefront banner
// @Tags Stores
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /merchant/store/banner [post]
func (s *StoreController) UploadBanner(c *gin.Context) {
	file, err := c.FormFile("banner")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Banner file is required")
		return
	}

	result, err := s.storeService.UploadBanner(c.Request.Context(), c.GetString("user_id"), file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Banner uploaded successfully")
}
