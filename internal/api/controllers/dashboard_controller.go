package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adsouq/internal/services"
	"adsouq/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	settingsService  services.SettingsServiceInterface
}

func NewDashboardController(
	dashboardService services.DashboardServiceInterface,
	settingsService services.SettingsServiceInterface,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		settingsService:  settingsService,
	}
}

// Overview godoc
// @Summary Moderation dashboard counters
// @Description Ad totals, pending queue size, user count and the latest submissions
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (d *DashboardController) Overview(c *gin.Context) {
	overview, err := d.dashboardService.Overview(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, overview, "Dashboard fetched successfully")
}

// VIPOverview godoc
// @Summary VIP program counters
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/vip/dashboard [get]
func (d *DashboardController) VIPOverview(c *gin.Context) {
	overview, err := d.dashboardService.VIPOverview(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, overview, "VIP dashboard fetched successfully")
}

// ToggleVIPSection godoc
// @Summary Show or hide the VIP section on public pages
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/settings/vip-section [post]
func (d *DashboardController) ToggleVIPSection(c *gin.Context) {
	status := c.PostForm("status")
	if status != "true" && status != "false" {
		utils.RespondError(c, http.StatusBadRequest, "status must be true or false")
		return
	}

	if err := d.settingsService.SetShowVIPSection(c.Request.Context(), status == "true"); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"show_vip_section": status == "true"}, "Setting updated successfully")
}
