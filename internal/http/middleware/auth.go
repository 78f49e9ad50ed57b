// README: Firebase ID-token auth middleware for admin routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"greentours/internal/infra"
)

const (
	ctxUID    = "auth_uid"
	ctxClaims = "auth_claims"
)

// Auth verifies the Bearer token with the given verifier and stores the
// identity on the request context. Requests without a valid token are
// rejected with 401.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ctxUID, token.UID)
		c.Set(ctxClaims, token.Claims)
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose token lacks the role
// custom claim. Must run after Auth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.Get(ctxClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		m, ok := claims.(map[string]interface{})
		if !ok || m["role"] != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// UID returns the authenticated user id set by Auth.
func UID(c *gin.Context) string {
	if v, ok := c.Get(ctxUID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
