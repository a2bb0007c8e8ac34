package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Aradhyakapil/food-safe/internal/auth"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid authorization format, use 'Bearer <token>'"})
			c.Abort()
			return
		}

		subject, actor, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token: " + err.Error()})
			c.Abort()
			return
		}

		// Attach actor info to request context
		c.Set("actor", actor)
		if actor == auth.ActorBusiness {
			businessID, err := strconv.Atoi(subject)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token subject"})
				c.Abort()
				return
			}
			c.Set("businessID", businessID)
		} else {
			c.Set("consumerID", subject)
		}
		c.Next()
	}
}

// RequireActor restricts a route group to one actor kind.
func RequireActor(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, exists := c.Get("actor")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "actor missing"})
			return
		}

		for _, a := range allowed {
			if actor == a {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "forbidden"})
	}
}
