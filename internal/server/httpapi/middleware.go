package httpapi

import (
	"net/http"
	"strings"

	"github.com/campushub/campushub/internal/server/models"
	"github.com/gin-gonic/gin"
)

// Context keys set by requireAuth for downstream handlers.
const (
	ctxAccountID = "accountID"
	ctxRole      = "role"
)

// requireAuth parses the bearer token, verifies it, and injects the claims
// into the request context. Any token failure, expired, tampered, or
// malformed, yields the same 401.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, err := s.issuer.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(ctxAccountID, claims.Subject)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// requireRole gates a route to one role. Must run after requireAuth.
func (s *Server) requireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
