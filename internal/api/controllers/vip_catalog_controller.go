package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adsouq/internal/models/request_models"
	"adsouq/internal/services"
	"adsouq/pkg/utils"
)

type VIPCatalogController struct {
	catalogService services.VIPCatalogServiceInterface
}

func NewVIPCatalogController(catalogService services.VIPCatalogServiceInterface) *VIPCatalogController {
	return &VIPCatalogController{
		catalogService: catalogService,
	}
}

// ListPackages godoc
// @Summary List active packages for a country
// @Description Accepts either a country ID or an ISO code via the country query parameter
// @Tags VIP
// @Produce json
// @Param country_id query string false "Country ID"
// @Param country query string false "ISO 3166-1 alpha-2 country code"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /vip/packages [get]
func (v *VIPCatalogController) ListPackages(c *gin.Context) {
	if countryID := c.Query("country_id"); countryID != "" {
		packages, err := v.catalogService.ListPackagesByCountry(c.Request.Context(), countryID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, packages, "Packages fetched successfully")
		return
	}

	code := c.Query("country")
	if code == "" {
		utils.RespondError(c, http.StatusBadRequest, "country_id or country code is required")
		return
	}

	packages, err := v.catalogService.ListPackagesByCountryCode(c.Request.Context(), code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, packages, "Packages fetched successfully")
}

// GetPackage godoc
// @Summary Get one package with its payment methods
// @Tags VIP
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /vip/packages/{id} [get]
func (v *VIPCatalogController) GetPackage(c *gin.Context) {
	pkg, err := v.catalogService.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pkg, "Package fetched successfully")
}

func (v *VIPCatalogController) ListAllPackages(c *gin.Context) {
	packages, err := v.catalogService.ListAllPackages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, packages, "Packages fetched successfully")
}

// CreatePackage godoc
// @Summary Create a package
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.VIPPackageRequest true "Package payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/vip/packages [post]
func (v *VIPCatalogController) CreatePackage(c *gin.Context) {
	var req request_models.VIPPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pkg, err := v.catalogService.CreatePackage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pkg, "Package created successfully")
}

func (v *VIPCatalogController) UpdatePackage(c *gin.Context) {
	var req request_models.VIPPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := v.catalogService.UpdatePackage(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Package updated successfully")
}

func (v *VIPCatalogController) TogglePackage(c *gin.Context) {
	active, err := v.catalogService.TogglePackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"is_active": active}, "Package updated successfully")
}

func (v *VIPCatalogController) DeletePackage(c *gin.Context) {
	if err := v.catalogService.DeletePackage(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Package deleted successfully")
}

// ListPaymentMethods godoc
// @Summary List payment methods for a country
// @Tags VIP
// @Produce json
// @Param country_id query string true "Country ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /vip/payment-methods [get]
func (v *VIPCatalogController) ListPaymentMethods(c *gin.Context) {
	countryID := c.Query("country_id")
	if countryID == "" {
		methods, err := v.catalogService.ListAllPaymentMethods(c.Request.Context())
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, methods, "Payment methods fetched successfully")
		return
	}

	includeInactive := c.Query("all") == "true"
	methods, err := v.catalogService.ListPaymentMethods(c.Request.Context(), countryID, includeInactive)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, methods, "Payment methods fetched successfully")
}

// CreatePaymentMethod godoc
// @Summary Create a payment method
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.PaymentMethodRequest true "Payment method payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/vip/payment-methods [post]
func (v *VIPCatalogController) CreatePaymentMethod(c *gin.Context) {
	var req request_models.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	method, err := v.catalogService.CreatePaymentMethod(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, method, "Payment method created successfully")
}

func (v *VIPCatalogController) UpdatePaymentMethod(c *gin.Context) {
	var req request_models.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := v.catalogService.UpdatePaymentMethod(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Payment method updated successfully")
}

func (v *VIPCatalogController) DeletePaymentMethod(c *gin.Context) {
	if err := v.catalogService.DeletePaymentMethod(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Payment method deleted successfully")
}
