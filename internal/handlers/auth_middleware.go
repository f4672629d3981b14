package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/classpoint/school-service/internal/auth"
	"github.com/classpoint/school-service/internal/config"
	"github.com/classpoint/school-service/internal/models"
)

// JWTAuthMiddleware validates bearer tokens and stores the caller's identity
// in the request context.
type JWTAuthMiddleware struct {
	cfg config.AuthConfig
}

func NewJWTAuthMiddleware(cfg config.AuthConfig) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{cfg: cfg}
}

func (m *JWTAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Missing or malformed Authorization header",
			})
			return
		}

		claims, err := auth.Parse(strings.TrimPrefix(header, "Bearer "), m.cfg.Secret, m.cfg.Issuer)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// RequireRoleMiddleware restricts a route to the given roles.
func (m *JWTAuthMiddleware) RequireRoleMiddleware(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user_role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Unauthorized",
			})
			return
		}

		role, ok := value.(models.UserRole)
		if ok {
			for _, allowed := range roles {
				if role == allowed {
					c.Next()
					return
				}
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
			Message: "Forbidden - insufficient permissions",
		})
	}
}

// currentUserID returns the authenticated caller's ID if present.
func currentUserID(c *gin.Context) *uint {
	value, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	id, ok := value.(uint)
	if !ok {
		return nil
	}
	return &id
}
