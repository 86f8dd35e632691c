package handlers

import (
	"net/http"

	"expertbridge/middleware"
	subscriptionSvc "expertbridge/services/subscription"
	"expertbridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubscriptionHandler serves featured-placement purchases.
type SubscriptionHandler struct {
	Service subscriptionSvc.SubscriptionService
}

// ListPlansHandler handles GET /api/subscriptions/plans.
func (h *SubscriptionHandler) ListPlansHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.Service.ListPlans()})
}

// InitializeHandler handles POST /api/subscriptions/initialize. The caller
// buys placement for itself; the professional id comes from the token.
func (h *SubscriptionHandler) InitializeHandler(c *gin.Context) {
	logger := utils.GetLogger()
	professionalID := c.GetString(middleware.ContextSubjectID)

	var req struct {
		PlanID string `json:"planId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid subscription request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Initialize(professionalID, req.PlanID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyHandler handles GET /api/subscriptions/verify/:reference. Safe to
// retry: a completed payment is returned as-is.
func (h *SubscriptionHandler) VerifyHandler(c *gin.Context) {
	reference := c.Param("reference")

	record, err := h.Service.Verify(reference)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// ActivateMockHandler handles POST /api/subscriptions/mock. Demo-only
// activation that skips the gateway.
func (h *SubscriptionHandler) ActivateMockHandler(c *gin.Context) {
	logger := utils.GetLogger()
	professionalID := c.GetString(middleware.ContextSubjectID)

	var req struct {
		PlanID string `json:"planId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid mock activation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	record, err := h.Service.ActivateMock(professionalID, req.PlanID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
