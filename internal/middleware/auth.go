package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

// EmailKey is the context key for the authenticated caller's e-mail.
const EmailKey = "userEmail"

type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Authenticate extracts the bearer credential and fails closed: no handler
// runs on a missing or invalid token.
func Authenticate(tokens TokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized access"})
			return
		}

		email, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized access"})
			return
		}

		c.Set(EmailKey, email)
		c.Next()
	}
}
