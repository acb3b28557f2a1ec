package helpers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/simplyrugby/club-server/internal/domain/common/errorz"
)

// AppHTTPErrorHandler maps domain errors onto HTTP statuses: validation
// failures are 400, missing entities 404, denied actions 403, missing or bad
// credentials 401. Anything unrecognized is a 500 with no internals leaked.
func AppHTTPErrorHandler(err error, c echo.Context) {
	var code int
	var message interface{}

	var httpErr *echo.HTTPError
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
	case errors.As(err, &fieldErrs):
		fields := make(map[string]string, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
		code = http.StatusBadRequest
		message = fields
	case errors.Is(err, errorz.ErrValidation):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errorz.ErrNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errorz.ErrForbidden):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errorz.ErrUnauthorized):
		code = http.StatusUnauthorized
		message = err.Error()
	default:
		code = http.StatusInternalServerError
		message = http.StatusText(http.StatusInternalServerError)
	}

	if m, ok := message.(string); ok {
		message = echo.Map{"error": m}
	}

	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, message)
		}
		if err != nil {
			c.Echo().Logger.Error(err)
		}
	}
}
