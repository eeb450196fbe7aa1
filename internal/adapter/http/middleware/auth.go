package middleware

import (
	"net/http"
	"strings"

	"thikana_backend/internal/security"
	"thikana_backend/pkg"

	"github.com/gin-gonic/gin"
)

// UserEmailKey is the gin context key carrying the authenticated email.
const UserEmailKey = "userEmail"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)

// RequireAuth verifies the Authorization bearer token and stores the
// authenticated email on the context. Every mutating route goes through this;
// read-only listing routes stay public.
func RequireAuth(tokens security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
