package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/unisched/campus-api/internal/models"
	appErrors "github.com/unisched/campus-api/pkg/errors"
	"github.com/unisched/campus-api/pkg/response"
)

// RoleHeader carries the role claim resolved by the upstream gateway.
const RoleHeader = "X-User-Role"

// RequireRole gates routes on the trusted role claim. A missing claim is
// unauthorized; a claim outside the allowed set is forbidden.
func RequireRole(allowed ...models.UserRole) gin.HandlerFunc {
	allowedSet := make(map[models.UserRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role := models.UserRole(c.GetHeader(RoleHeader))
		if role == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if _, ok := allowedSet[role]; !ok {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
