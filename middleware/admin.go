package middleware

import (
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoleChecker reports whether the identified caller holds the admin role.
// It is injected so route guards can be exercised with a fake provider.
type RoleChecker func(email string) (bool, error)

// AdminRequired gates a route on the admin role. It expects AuthRequired to
// have run first; a valid credential without the role answers forbidden.
func AdminRequired(isAdmin RoleChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := AuthedEmail(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				utils.ErrorResponse{Message: "Missing credential"})
			return
		}

		admin, err := isAdmin(email)
		if err != nil {
			utils.GetLogger().Error("role lookup failed", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				utils.ErrorResponse{Message: "Failed to verify role"})
			return
		}
		if !admin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				utils.ErrorResponse{Message: "Access forbidden"})
			return
		}

		c.Next()
	}
}
