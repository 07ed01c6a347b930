package middleware

import (
	"net/http"
	"strings"

	"rmu/credit_bank_service/pkg/security"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// Auth requires a valid "Authorization: Bearer <jwt>" header and stores the
// claims on the context.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			unauthorized(c, "missing bearer token")
			return
		}

		claims, err := security.ParseJWT(strings.TrimSpace(token), secret)
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole must run after Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			unauthorized(c, "missing bearer token")
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "insufficient role"})
	}
}

func ClaimsFromContext(c *gin.Context) (*security.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*security.Claims)
	return claims, ok
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": message})
}
