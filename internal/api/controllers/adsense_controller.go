package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adsouq/internal/models/request_models"
	"adsouq/internal/services"
	"adsouq/pkg/utils"
)

type AdSenseController struct {
	adSenseService services.AdSenseServiceInterface
}

func NewAdSenseController(adSenseService services.AdSenseServiceInterface) *AdSenseController {
	return &AdSenseController{
		adSenseService: adSenseService,
	}
}

// ListPlacements godoc
// @Summary List every ad placement
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/adsense [get]
func (a *AdSenseController) ListPlacements(c *gin.Context) {
	placements, err := a.adSenseService.ListPlacements(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, placements, "Placements fetched successfully")
}

// CreatePlacement godoc
// @Summary Create an ad placement
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.AdSenseRequest true "Placement payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/adsense [post]
func (a *AdSenseController) CreatePlacement(c *gin.Context) {
	var req request_models.AdSenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	placement, err := a.adSenseService.CreatePlacement(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, placement, "Placement created successfully")
}

func (a *AdSenseController) UpdatePlacement(c *gin.Context) {
	var req request_models.AdSenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.adSenseService.UpdatePlacement(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Placement updated successfully")
}

func (a *AdSenseController) TogglePlacement(c *gin.Context) {
	active, err := a.adSenseService.TogglePlacement(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"is_active": active}, "Placement updated successfully")
}

func (a *AdSenseController) DeletePlacement(c *gin.Context) {
	if err := a.adSenseService.DeletePlacement(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Placement deleted successfully")
}
