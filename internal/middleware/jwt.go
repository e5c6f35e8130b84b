package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/internal/service"
	appErrors "github.com/campusware/portal-api/pkg/errors"
	"github.com/campusware/portal-api/pkg/response"
)

// ContextUserKey is the gin context key storing JWT claims.
const ContextUserKey = "currentUser"

// JWT protects routes by requiring a valid session credential.
func JWT(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "token missing"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// RequireAdmin rejects non-admin credentials with 403.
func RequireAdmin() gin.HandlerFunc {
	return requireRole(true, "admin only")
}

// RequireStudent rejects admin credentials with 403; the student-facing
// workflow endpoints act on the caller's own record.
func RequireStudent() gin.HandlerFunc {
	return requireRole(false, "not available to admin accounts")
}

func requireRole(admin bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if claims == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if claims.IsAdmin != admin {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, message))
			c.Abort()
			return
		}
		c.Next()
	}
}

// ClaimsFromContext extracts the validated claims, nil when absent.
func ClaimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}
