package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adsouq/internal/models/request_models"
	"adsouq/internal/services"
	"adsouq/pkg/utils"
)

type TaxonomyController struct {
	taxonomyService services.TaxonomyServiceInterface
}

func NewTaxonomyController(taxonomyService services.TaxonomyServiceInterface) *TaxonomyController {
	return &TaxonomyController{
		taxonomyService: taxonomyService,
	}
}

// ListCategories godoc
// @Summary List categories
// @Tags Taxonomy
// @Produce json
// @Param all query string false "Include inactive categories (admin views)"
// @Success 200 {object} utils.APIResponse
// @Router /categories [get]
func (t *TaxonomyController) ListCategories(c *gin.Context) {
	includeInactive := c.Query("all") == "true"

	categories, err := t.taxonomyService.ListCategories(c.Request.Context(), includeInactive)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

// CreateCategory godoc
// @Summary Create a category
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.CategoryRequest true "Category payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/categories [post]
func (t *TaxonomyController) CreateCategory(c *gin.Context) {
	var req request_models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := t.taxonomyService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category created successfully")
}

func (t *TaxonomyController) UpdateCategory(c *gin.Context) {
	var req request_models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := t.taxonomyService.UpdateCategory(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category updated successfully")
}

func (t *TaxonomyController) ToggleCategory(c *gin.Context) {
	active, err := t.taxonomyService.ToggleCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"is_active": active}, "Category updated successfully")
}

func (t *TaxonomyController) DeleteCategory(c *gin.Context) {
	if err := t.taxonomyService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category deleted successfully")
}

// ListCountries godoc
// @Summary List countries
// @Tags Taxonomy
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /countries [get]
func (t *TaxonomyController) ListCountries(c *gin.Context) {
	includeInactive := c.Query("all") == "true"

	countries, err := t.taxonomyService.ListCountries(c.Request.Context(), includeInactive)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, countries, "Countries fetched successfully")
}

func (t *TaxonomyController) CreateCountry(c *gin.Context) {
	var req request_models.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	country, err := t.taxonomyService.CreateCountry(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, country, "Country created successfully")
}

func (t *TaxonomyController) DeleteCountry(c *gin.Context) {
	if err := t.taxonomyService.DeleteCountry(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Country deleted successfully")
}

// ListStates godoc
// @Summary List states of a country with its phone code
// @Tags Taxonomy
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /countries/{id}/states [get]
func (t *TaxonomyController) ListStates(c *gin.Context) {
	countryID := c.Param("id")
	if countryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Country ID is required")
		return
	}

	states, err := t.taxonomyService.ListStates(c.Request.Context(), countryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, states, "States fetched successfully")
}

func (t *TaxonomyController) CreateState(c *gin.Context) {
	var req request_models.StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := t.taxonomyService.CreateState(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "State created successfully")
}

func (t *TaxonomyController) DeleteState(c *gin.Context) {
	if err := t.taxonomyService.DeleteState(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "State deleted successfully")
}

// ListCities godoc
// @Summary List cities of a state
// @Tags Taxonomy
// @Produce json
// @Param id path string true "State ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /states/{id}/cities [get]
func (t *TaxonomyController) ListCities(c *gin.Context) {
	stateID := c.Param("id")
	if stateID == "" {
		utils.RespondError(c, http.StatusBadRequest, "State ID is required")
		return
	}

	cities, err := t.taxonomyService.ListCities(c.Request.Context(), stateID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

func (t *TaxonomyController) CreateCity(c *gin.Context) {
	var req request_models.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	city, err := t.taxonomyService.CreateCity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City created successfully")
}

func (t *TaxonomyController) DeleteCity(c *gin.Context) {
	if err := t.taxonomyService.DeleteCity(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "City deleted successfully")
}
