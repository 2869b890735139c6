package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"sitepay.com/sitepay/web/common"
)

const (
	ClaimsKey     = "claims"
	EmployeeIDKey = "employeeId"
	AccessRoleKey = "accessRole"
)

func parseJwt(tokenStr string, jwtSecret []byte) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	return token, err
}

// Authentication checks for a valid Bearer token and stashes the caller's
// identity into the request context. No handler reads ambient session
// state; everything downstream goes through these context keys.
func Authentication(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			cookie, err := c.Cookie("sitepay.ApplicationCookie")
			if err != nil {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = parts[1]
		}

		token, err := parseJwt(tokenStr, jwtSecret)

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok && int64(exp) < time.Now().Unix() {
				c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("token expired"))
				return
			}

			c.Set(ClaimsKey, claims)
			if id, ok := claims["id"].(string); ok {
				c.Set(EmployeeIDKey, id)
			}
			if role, ok := claims["accessRole"].(string); ok {
				c.Set(AccessRoleKey, role)
			}
		}

		c.Next()
	}
}

// ManagerOnly gates employee and site administration behind the Manager
// access role. Must run after Authentication.
func ManagerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(AccessRoleKey) != "Manager" {
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("Manager access only"))
			return
		}
		c.Next()
	}
}
