package jwt

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the admin token claims issued by the identity provider
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// HasAnyRole reports whether the token role is one of roles (case-insensitive)
func (c *Claims) HasAnyRole(roles []string) bool {
	for _, r := range roles {
		if strings.EqualFold(strings.TrimSpace(r), c.Role) {
			return true
		}
	}
	return false
}
