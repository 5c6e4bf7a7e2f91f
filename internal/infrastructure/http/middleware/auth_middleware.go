package middleware

import (
	stdErrors "errors"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/candidate-screening/errors"
	"github.com/johnquangdev/candidate-screening/pkg/jwt"
)

// Echo context keys set by AdminAuth
const (
	ContextKeyAdminID    = "admin_id"
	ContextKeyAdminEmail = "admin_email"
)

// AdminAuth verifies bearer tokens on the admin API
type AdminAuth struct {
	manager  *jwt.Manager
	roles    []string
	disabled bool
	logger   *zap.Logger
}

// NewAdminAuth creates the admin middleware. With disabled set every request
// passes through, which is meant for local development only.
func NewAdminAuth(manager *jwt.Manager, roles []string, disabled bool, logger *zap.Logger) *AdminAuth {
	return &AdminAuth{
		manager:  manager,
		roles:    roles,
		disabled: disabled,
		logger:   logger,
	}
}

// Middleware returns the echo middleware function
func (m *AdminAuth) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.disabled {
				return next(c)
			}

			token := extractToken(c)
			if token == "" {
				return errors.ErrUnauthenticated()
			}

			claims, err := m.manager.ValidateToken(token)
			if err != nil {
				if m.logger != nil {
					m.logger.Warn("admin token rejected",
						zap.String("path", c.Path()),
						zap.Error(err),
					)
				}
				if stdErrors.Is(err, jwt.ErrTokenExpired) {
					return errors.ErrTokenExpired()
				}
				return errors.ErrInvalidToken()
			}

			if len(m.roles) > 0 && !claims.HasAnyRole(m.roles) {
				return errors.ErrForbidden("admin role required")
			}

			c.Set(ContextKeyAdminID, claims.Subject)
			c.Set(ContextKeyAdminEmail, claims.Email)

			return next(c)
		}
	}
}

// extractToken reads "Authorization: Bearer <token>"
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
