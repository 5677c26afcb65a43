package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/table-reservations/internal/httperr"
)

const (
	ContextSubject = "subject"
	ContextRole    = "role"

	RoleAdmin = "admin"
)

var errWrongRole = errors.New("token role is not admin")

// IssueAdminToken signs an HS256 token carrying role=admin.
func IssueAdminToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": RoleAdmin,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAdminToken validates signature, expiry and role, returning the subject.
func ParseAdminToken(secret, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	if role, _ := claims["role"].(string); role != RoleAdmin {
		return "", errWrongRole
	}

	sub, _ := claims.GetSubject()
	return sub, nil
}

func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Authorization header must be a Bearer token")
			return
		}

		sub, err := ParseAdminToken(secret, parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token")
			return
		}

		c.Set(ContextSubject, sub)
		c.Set(ContextRole, RoleAdmin)

		c.Next()
	}
}
