package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdulrahman-nisar/UpliftAI/utils"
)

// AuthMiddleware validates the bearer token and stores the caller's uid
// in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Missing authorization token",
			})
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid authorization token",
			})
			return
		}

		c.Set("uid", claims.UserID)
		c.Next()
	}
}
