package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"ArogyaMCVK/models"
	"ArogyaMCVK/services"
	"ArogyaMCVK/util"

	"github.com/gin-gonic/gin"
)

const identityKey = "currentUser"

// UserResolver loads the account behind a verified token subject.
type UserResolver func(ctx context.Context, id string) (models.User, error)

/*
* Pull the bearer token off the Authorization header
* Verify it, reporting expired and invalid tokens distinctly
* Resolve the subject into the current account and attach it
 */
func RequireAuth(resolve UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.MsgBody("Not authorized, no token provided."))
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		subject, _, err := services.VerifyToken(token)
		if err != nil {
			switch err {
			case services.ErrTokenExpired:
				c.AbortWithStatusJSON(http.StatusUnauthorized, util.MsgBody("Not authorized, token expired."))
			case services.ErrNoSecret:
				log.Println("JWT_SECRET is not defined. Please check your .env file.")
				c.AbortWithStatusJSON(http.StatusInternalServerError, util.MsgBody("Server configuration error."))
			default:
				c.AbortWithStatusJSON(http.StatusUnauthorized, util.MsgBody("Not authorized, invalid token."))
			}
			return
		}

		user, err := resolve(c.Request.Context(), subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.MsgBody("Not authorized, user not found for this token."))
			return
		}

		c.Set(identityKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity attached by RequireAuth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// RequireRoles restricts a route to the given roles. It must run after
// RequireAuth; a missing identity is a caller ordering bug and is
// rejected as unauthorized.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.MsgBody("Not authorized, user data missing."))
			return
		}
		if !user.Role.OneOf(allowed...) {
			names := make([]string, len(allowed))
			for i, role := range allowed {
				names[i] = string(role)
			}
			c.AbortWithStatusJSON(http.StatusForbidden, util.MsgBody(fmt.Sprintf(
				"User role '%s' is not authorized to access this resource. Required roles: %s.",
				user.Role, strings.Join(names, ", "))))
			return
		}
		c.Next()
	}
}
