package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adsouq/internal/models/request_models"
	"adsouq/internal/services"
	"adsouq/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// Subscribe godoc
// @Summary Submit a VIP subscription request
// @Description Multipart form with customer details and, when the payment method demands it, a proof file under the payment_proof part
// @Tags VIP
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /vip/subscribe [post]
func (s *SubscriptionController) Subscribe(c *gin.Context) {
	var form request_models.SubscribeForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Absent file is legal for methods that do not require proof.
	proof, _ := c.FormFile("payment_proof")

	result, err := s.subscriptionService.Subscribe(c.Request.Context(), form, proof)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Subscription request received and is awaiting review")
}

// ListSubscriptions godoc
// @Summary List subscription requests
// @Tags Admin
// @Produce json
// @Param status query string false "pending, completed, failed or all" default(pending)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/vip/subscriptions [get]
func (s *SubscriptionController) ListSubscriptions(c *gin.Context) {
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

	subscriptions, err := s.subscriptionService.ListSubscriptions(c.Request.Context(), status, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subscriptions, "Subscriptions fetched successfully")
}

// GetSubscription godoc
// @Summary Get one subscription request
// @Tags Admin
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/vip/subscriptions/{id} [get]
func (s *SubscriptionController) GetSubscription(c *gin.Context) {
	subscription, err := s.subscriptionService.GetSubscription(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subscription, "Subscription fetched successfully")
}

// ApproveSubscription godoc
// @Summary Approve a subscription and grant VIP
// @Tags Admin
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/vip/subscriptions/{id}/approve [post]
func (s *SubscriptionController) ApproveSubscription(c *gin.Context) {
	notes := c.PostForm("admin_notes")

	err := s.subscriptionService.ApproveSubscription(c.Request.Context(), c.Param("id"), c.GetString("user_id"), notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription approved successfully")
}

// RejectSubscription godoc
// @Summary Reject a subscription request
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/vip/subscriptions/{id}/reject [post]
func (s *SubscriptionController) RejectSubscription(c *gin.Context) {
	var req request_models.RejectSubscriptionRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := s.subscriptionService.RejectSubscription(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.Reason)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription rejected")
}
