package middleware

import (
	"net/http"
	"strings"

	"expertbridge/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextSubjectID = "subjectID"
	ContextEmail     = "email"
	ContextRole      = "role"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

func requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Set(ContextSubjectID, claims.SubjectID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// Authenticated admits any caller with a valid token regardless of role.
// Handlers dispatch on the role set in the context.
func Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextSubjectID, claims.SubjectID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// AuthProfessional admits only authenticated professionals.
func AuthProfessional() gin.HandlerFunc {
	return requireRole(utils.RoleProfessional)
}

// AuthAdmin admits only authenticated admins.
func AuthAdmin() gin.HandlerFunc {
	return requireRole(utils.RoleAdmin)
}
