package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/newark-medical/hospital-api/internal/platform/apperr"
)

// ErrorHandler maps service errors to the API's `{"detail": ...}` error shape.
// Typed apperr errors carry their own status; echo HTTP errors keep theirs;
// anything else is a 500.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		detail := err.Error()

		switch e := err.(type) {
		case *echo.HTTPError:
			status = e.Code
			if m, ok := e.Message.(string); ok {
				detail = m
			}
		default:
			if apperr.KindOf(err) != apperr.KindUnknown {
				status = apperr.HTTPStatus(err)
				detail = apperr.Detail(err)
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, map[string]string{"detail": detail})
	}
}
