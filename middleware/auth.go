package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is the gin context key holding the authenticated caller's
// email, as extracted from the bearer token's claims.
const ContextEmailKey = "authEmail"

// AuthRequired verifies the bearer credential and stores the caller's email
// in the request context. A missing or malformed header and an invalid or
// expired token are both unauthorized; role and identity checks come later
// and answer forbidden instead.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				utils.ErrorResponse{Message: "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				utils.ErrorResponse{Message: "Invalid token"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// AuthedEmail returns the authenticated email previously stored by
// AuthRequired.
func AuthedEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextEmailKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}
