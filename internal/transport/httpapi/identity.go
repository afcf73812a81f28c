package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/domain"
)

const identityKey = "storefront.identity"

// Identity resolves the caller from headers set by the upstream session provider.
func Identity(userHeader, roleHeader string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(userHeader))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}

		role := domain.RoleUser
		if strings.EqualFold(strings.TrimSpace(c.GetHeader(roleHeader)), string(domain.RoleAdmin)) {
			role = domain.RoleAdmin
		}

		c.Set(identityKey, domain.Identity{UserID: userID, Role: role})
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !identityFrom(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, errorResponse{Error: "admin privileges required"})
			return
		}

		c.Next()
	}
}

func identityFrom(c *gin.Context) domain.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}
	}

	identity, _ := v.(domain.Identity)
	return identity
}
