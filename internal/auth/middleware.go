package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// contextKey is where Authenticate stores the verified claims.
const contextKey = "currentUser"

// Authenticate reads an optional "Authorization: Bearer <token>" header and,
// when the token verifies, stores the claims on the request context. It never
// aborts: anonymous requests pass through and the route gates decide.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := strings.Fields(c.GetHeader("Authorization"))
		if len(fields) == 2 && strings.EqualFold(fields[0], "bearer") {
			if claims, err := VerifyToken(fields[1], secret); err == nil {
				c.Set(contextKey, claims)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the claims set by Authenticate, if any.
func CurrentUser(c *gin.Context) (Claims, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return Claims{}, false
	}
	claims, ok := v.(Claims)
	return claims, ok
}

// RequireAdmin aborts with 401 unless the caller is an authenticated admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok || !claims.IsAdmin {
			unauthorized(c)
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin aborts with 401 unless the caller is an admin or the
// user named by the given route parameter.
func RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok || (!claims.IsAdmin && claims.Username != c.Param(param)) {
			unauthorized(c)
			return
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"message": "Unauthorized", "status": http.StatusUnauthorized},
	})
}
