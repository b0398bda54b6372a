package middleware

import (
	"strings"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where the guard stores the authenticated identity.
const ContextUserKey = "current_user"

// RequireRole is the single authorization choke point: it validates the
// bearer token, loads the identity, and enforces the role. Every failure on
// the way to a valid identity produces the same unauthenticated response so
// callers cannot distinguish a bad signature from an expired token from an
// unknown or deactivated subject.
func RequireRole(users repository.UserStore, tokens *services.TokenService, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Unauthorized(c, "authentication rejected")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, err := tokens.Validate(tokenString)
		if err != nil {
			utils.Unauthorized(c, "authentication rejected")
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), subject)
		if err != nil {
			utils.UpstreamUnavailable(c, "service temporarily unavailable")
			c.Abort()
			return
		}
		if user == nil || !user.IsActive {
			utils.Unauthorized(c, "authentication rejected")
			c.Abort()
			return
		}

		if user.Role != requiredRole {
			utils.Forbidden(c, "access denied")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity set by RequireRole, or nil if the guard
// did not run.
func CurrentUser(c *gin.Context) *model.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}
