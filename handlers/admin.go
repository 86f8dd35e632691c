package handlers

import (
	"net/http"
	"strconv"

	"expertbridge/middleware"
	"expertbridge/models"
	adminSvc "expertbridge/services/admin"
	professionalSvc "expertbridge/services/professional"
	reviewSvc "expertbridge/services/review"
	"expertbridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the back office: verification, moderation, stats and
// removal.
type AdminHandler struct {
	Admins        adminSvc.AdminService
	Professionals professionalSvc.ProfessionalService
	Reviews       reviewSvc.ReviewService
}

// ListPendingHandler handles GET /api/admin/professionals/pending.
func (h *AdminHandler) ListPendingHandler(c *gin.Context) {
	pending, err := h.Professionals.ListPending()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"professionals": pending})
}

// ListAllHandler handles GET /api/admin/professionals, optionally filtered by
// verification status.
func (h *AdminHandler) ListAllHandler(c *gin.Context) {
	status := c.Query("status")

	var page, limit int64 = 1, 20
	if v, err := strconv.ParseInt(c.Query("page"), 10, 64); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && v > 0 {
		limit = v
	}

	professionals, total, err := h.Professionals.ListAll(status, page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"professionals": professionals,
		"total":         total,
		"page":          page,
		"limit":         limit,
	})
}

// VerifyProfessionalHandler handles PUT /api/admin/professionals/:id/verify.
// The body names the target status and, when rejecting, an optional reason.
func (h *AdminHandler) VerifyProfessionalHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	adminID := c.GetString(middleware.ContextSubjectID)

	var req struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid verification request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Professionals.SetVerification(id, req.Status, req.Reason, adminID); err != nil {
		utils.RespondError(c, err)
		return
	}
	logger.Info("Professional verification updated",
		zap.String("id", id), zap.String("status", req.Status), zap.String("adminId", adminID))
	c.JSON(http.StatusOK, gin.H{"message": "Verification updated", "status": req.Status})
}

// DeleteProfessionalHandler handles DELETE /api/admin/professionals/:id.
func (h *AdminHandler) DeleteProfessionalHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Professionals.DeleteProfessional(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Professional deleted"})
}

// PendingReviewsHandler handles GET /api/admin/reviews/pending.
func (h *AdminHandler) PendingReviewsHandler(c *gin.Context) {
	pending, err := h.Reviews.ListPending()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if pending == nil {
		pending = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"reviews": pending})
}

// ApproveReviewHandler handles PUT /api/admin/reviews/:id/approve.
func (h *AdminHandler) ApproveReviewHandler(c *gin.Context) {
	id := c.Param("id")
	review, err := h.Reviews.Approve(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// StatsHandler handles GET /api/admin/stats.
func (h *AdminHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Admins.GetStats()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
