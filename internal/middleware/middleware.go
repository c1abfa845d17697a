package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ticketcue/helper"
	"ticketcue/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Secured validates the Bearer token and puts the caller's identity on the
// gin context. Every reminder and status operation requires it: there is no
// anonymous fallback user.
func Secured(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			helper.SendError(c, http.StatusUnauthorized, errors.New("missing bearer token"), helper.ErrUnauthorizedCode)
			c.Abort()
			return
		}

		raw := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			helper.SendError(c, http.StatusUnauthorized, errors.New("invalid token"), helper.ErrUnauthorizedCode)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			helper.SendError(c, http.StatusUnauthorized, errors.New("invalid token claims"), helper.ErrUnauthorizedCode)
			c.Abort()
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			helper.SendError(c, http.StatusUnauthorized, errors.New("token has no user_id"), helper.ErrUnauthorizedCode)
			c.Abort()
			return
		}

		c.Set(constants.UserID, userID)
		c.Set(constants.Token, raw)
		c.Next()
	}
}
