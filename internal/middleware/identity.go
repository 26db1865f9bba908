package middleware

import (
	"strings"

	"petshop/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// Identity parses a Bearer token when one is present and attaches the caller
// to the context. It never rejects: routes that need the identity read it
// from the context, everything else stays open.
func Identity(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if claims, err := validator.ValidateToken(token); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("user_role", claims.Role)
			}
		}
		c.Next()
	}
}
