package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/deptsite/cms-api/internal/models"
	appErrors "github.com/deptsite/cms-api/pkg/errors"
	"github.com/deptsite/cms-api/pkg/response"
)

// RequireRoles blocks requests whose authenticated role is not in the allow list.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthenticated)
			c.Abort()
			return
		}
		claims, ok := claimsValue.(*models.JWTClaims)
		if !ok {
			response.Error(c, appErrors.ErrUnauthenticated)
			c.Abort()
			return
		}

		if _, ok := allowed[claims.Role]; !ok {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "Admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
