package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	a "github.com/you/shoe-resale/pkg/auth"
)

// JWTAuth verifies the bearer token and stashes the caller's email on the
// context. Missing header and bad token are distinct failures: 401 for the
// former, 403 for the latter.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_credential"})
			return
		}
		_, tok, found := strings.Cut(h, " ")
		if !found {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid_credential"})
			return
		}
		claims, err := a.ParseValidate(tok, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid_credential"})
			return
		}
		c.Set("email", claims.Email)
		c.Next()
	}
}

// RoleResolver answers role questions from the user directory, not from the
// token, so promotions and deletions take effect on the next request.
type RoleResolver interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
	IsSeller(ctx context.Context, email string) (bool, error)
}

func RequireAdmin(r RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		ok, err := r.IsAdmin(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

func RequireSeller(r RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		ok, err := r.IsSeller(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// RequireSellerOrAdmin admits either role; used for listing deletion.
func RequireSellerOrAdmin(r RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		seller, err := r.IsSeller(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !seller {
			admin, err := r.IsAdmin(c.Request.Context(), email)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if !admin {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
		}
		c.Next()
	}
}
