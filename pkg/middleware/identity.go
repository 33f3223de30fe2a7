package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"roamly/pkg/utils"
)

// OptionalIdentityMiddleware attaches user_id to the request context when a
// valid bearer token is presented. Requests without one proceed anonymously;
// plans created anonymously simply carry no owner.
func OptionalIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil || claims.UserID == "" {
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
