// Package handlers contains the HTTP endpoints. Every handler binds and
// validates its payload, resolves the acting user from the request context
// and delegates to a domain service; errors bubble to the app error handler.
package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/simplyrugby/club-server/internal/adapters/controller/http/middlewares"
	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var validate = validator.New()

func bind(c echo.Context, payload interface{}) error {
	if err := c.Bind(payload); err != nil {
		return errorz.Validationf("malformed request body")
	}
	return validate.Struct(payload)
}

func parseDate(value, field string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errorz.Validationf("%s must be a %s date", field, dateLayout)
	}
	return date, nil
}

type coachResolver interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Coach, error)
}

// contextCoach maps the authenticated user to their coach profile.
func contextCoach(c echo.Context, coaches coachResolver) (*entity.Coach, error) {
	user := middlewares.ContextUser(c)
	if user == nil {
		return nil, errorz.ErrUnauthorized
	}
	coach, err := coaches.GetByUserID(c.Request().Context(), user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.Forbiddenf("user %s has no coach profile", user.ID)
		}
		return nil, err
	}
	return coach, nil
}
