package middlewares

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/entity"
)

const userContextKey = "user"

type tokenResolver interface {
	UserFromToken(ctx context.Context, token string) (*entity.User, error)
}

type Middlewares struct {
	auth tokenResolver
}

func New(auth tokenResolver) *Middlewares {
	return &Middlewares{auth: auth}
}

// SessionAuth resolves the bearer token to a user and stores it on the echo
// context for handlers downstream.
func (m *Middlewares) SessionAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return errorz.ErrUnauthorized
		}

		user, err := m.auth.UserFromToken(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// RequireRoles gates a route to the listed roles. Admins always pass.
func (m *Middlewares) RequireRoles(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := ContextUser(c)
			if user == nil {
				return errorz.ErrUnauthorized
			}
			if user.Role == entity.RoleAdmin {
				return next(c)
			}
			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}
			return errorz.Forbiddenf("role %s may not access this resource", user.Role)
		}
	}
}

// ContextUser returns the authenticated user set by SessionAuth, nil when
// the route is unauthenticated.
func ContextUser(c echo.Context) *entity.User {
	user, _ := c.Get(userContextKey).(*entity.User)
	return user
}
