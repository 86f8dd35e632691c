package handlers

import (
	"net/http"
	"time"

	"expertbridge/middleware"
	professionalSvc "expertbridge/services/professional"
	reviewSvc "expertbridge/services/review"
	"expertbridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfessionalHandler serves public profile reads and owner-only profile
// writes.
type ProfessionalHandler struct {
	Service professionalSvc.ProfessionalService
	Reviews reviewSvc.ReviewService
}

// GetProfessionalHandler handles GET /api/professionals/:id. Public reads
// count as profile views and include the professional's published reviews.
func (h *ProfessionalHandler) GetProfessionalHandler(c *gin.Context) {
	id := c.Param("id")

	professional, err := h.Service.GetByID(id, true)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	reviews, err := h.Reviews.ListApproved(id, 20)
	if err != nil {
		utils.GetLogger().Warn("Failed to load reviews for profile", zap.String("id", id), zap.Error(err))
		reviews = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"professional": professional,
		"isFeatured":   professional.Featured.ActiveAt(time.Now()),
		"reviews":      reviews,
	})
}

// UpdateProfessionalHandler handles PUT /api/professionals/:id.
func (h *ProfessionalHandler) UpdateProfessionalHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	requesterID := c.GetString(middleware.ContextSubjectID)

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		logger.Error("Invalid profile update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateProfile(id, requesterID, updates)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UploadPhotoHandler handles POST /api/professionals/:id/photo. The image
// arrives as a data URI or base64 payload.
func (h *ProfessionalHandler) UploadPhotoHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	requesterID := c.GetString(middleware.ContextSubjectID)

	var req struct {
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid photo upload request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UploadProfilePhoto(id, requesterID, req.Image)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// TrackContactHandler handles POST /api/professionals/:id/contact.
func (h *ProfessionalHandler) TrackContactHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.TrackContact(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact recorded"})
}
