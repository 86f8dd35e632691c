package handlers

import (
	"net/http"

	"expertbridge/middleware"
	"expertbridge/models"
	adminSvc "expertbridge/services/admin"
	professionalSvc "expertbridge/services/professional"
	"expertbridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration and sign-in for professionals and admins.
type AuthHandler struct {
	Professionals professionalSvc.ProfessionalService
	Admins        adminSvc.AdminService
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Professional
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Professionals.Register(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Professionals.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdminLoginHandler handles POST /api/auth/admin/login.
func (h *AuthHandler) AdminLoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid admin login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Admins.Login(req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler handles GET /api/auth/me. The route is role-agnostic: the
// token's role decides whether a professional or an admin account comes back.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	subjectID := c.GetString(middleware.ContextSubjectID)

	if c.GetString(middleware.ContextRole) == utils.RoleAdmin {
		account, err := h.Admins.GetByID(subjectID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, account)
		return
	}

	professional, err := h.Professionals.GetByID(subjectID, false)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, professional)
}
