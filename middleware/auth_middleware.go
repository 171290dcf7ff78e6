package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrsuite/recruit-go/types"
)

func claimsFrom(c *gin.Context) (*types.Claims, bool) {
	claims, ok := c.MustGet("claims").(*types.Claims)
	return claims, ok
}

// Staff gates review/advance endpoints to HR and admin users.
func Staff() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}
		if !claims.IsStaff() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff only"})
			return
		}
		c.Next()
	}
}
