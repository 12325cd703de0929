package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// DemoGuard blocks writes from reserved demo identities. Runs after
// Authenticate and before any role check. The response is a soft payload,
// not an HTTP error, so client UIs show a notice instead of a failure page.
func DemoGuard(demoEmails []string) ginext.HandlerFunc {
	blocked := make(map[string]struct{}, len(demoEmails))
	for _, email := range demoEmails {
		blocked[email] = struct{}{}
	}

	return func(c *ginext.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		if _, ok := blocked[c.GetString(EmailKey)]; ok {
			c.AbortWithStatusJSON(http.StatusOK, ginext.H{
				"success": false,
				"isDemo":  true,
				"message": "Demo Mode: You can view the UI but cannot modify data.",
			})
			return
		}

		c.Next()
	}
}
