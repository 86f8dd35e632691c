package handlers

import (
	"net/http"
	"strconv"

	"expertbridge/models"
	reviewSvc "expertbridge/services/review"
	"expertbridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves public review submission and listing.
type ReviewHandler struct {
	Service reviewSvc.ReviewService
}

// SubmitReviewHandler handles POST /api/reviews.
func (h *ReviewHandler) SubmitReviewHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Review
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid review submission", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	review, err := h.Service.Submit(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListReviewsHandler handles GET /api/reviews/:professionalId. Only approved
// reviews are public.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	professionalID := c.Param("professionalId")

	var limit int64 = 20
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && v > 0 {
		limit = v
	}

	reviews, err := h.Service.ListApproved(professionalID, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
