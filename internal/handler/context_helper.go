package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/deptsite/cms-api/internal/middleware"
	"github.com/deptsite/cms-api/internal/models"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

// publishedFilter resolves the published query param for list endpoints.
// Drafts are only visible to admins; everyone else is restricted to
// published content and the flag is ignored.
func publishedFilter(c *gin.Context) *bool {
	claims := claimsFromContext(c)
	if claims == nil || claims.Role != models.RoleAdmin {
		published := true
		return &published
	}
	switch c.Query("published") {
	case "true":
		published := true
		return &published
	case "false":
		published := false
		return &published
	default:
		return nil
	}
}
