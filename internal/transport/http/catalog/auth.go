package catalog

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
)

const adminAuthority = "ROLE_ADMIN"

// RequireAdmin validates the bearer token on mutating endpoints and
// requires the administrative authority. Token issuance lives elsewhere;
// this middleware only verifies.
func RequireAdmin(secret []byte, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(c, http.StatusUnauthorized, "Unauthorized", "missing bearer token")
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			log.WithField("path", c.Request.URL.Path).Warnf("rejected token: %v", err)
			writeError(c, http.StatusUnauthorized, "Unauthorized", "invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !hasAuthority(claims, adminAuthority) {
			writeError(c, http.StatusForbidden, "Forbidden", "administrative role required")
			return
		}

		c.Next()
	}
}

func hasAuthority(claims jwt.MapClaims, want string) bool {
	raw, ok := claims["authorities"]
	if !ok {
		return false
	}
	list, ok := raw.([]interface{})
	if !ok {
		return false
	}
	for _, item := range list {
		if s, ok := item.(string); ok && s == want {
			return true
		}
	}
	return false
}
