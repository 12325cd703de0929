package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type RoleDirectory interface {
	RoleOf(ctx context.Context, email string) (domain.Role, error)
}

// RequireRole is the single authorization predicate for role-gated routes:
// one directory lookup per request, compared against the required role.
func RequireRole(directory RoleDirectory, required domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		role, err := directory.RoleOf(c.Request.Context(), c.GetString(EmailKey))
		if err != nil {
			// An unknown identity has no role; a failed lookup is not a denial.
			if errors.Is(err, domain.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{
					"error": string(required) + " only actions",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{
				"error": "internal server error",
			})
			return
		}
		if role != required {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{
				"error": string(required) + " only actions",
				"role":  string(role),
			})
			return
		}

		c.Next()
	}
}
