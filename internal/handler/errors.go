package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the application-wide Echo error handler.  Anything
// a handler did not translate itself ends up here: unknown routes
// become the 404 page and every unhandled fault becomes the 500 page.
// Nothing is silently swallowed into an empty response.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	var body echo.Map
	switch {
	case code == http.StatusNotFound:
		body = echo.Map{"error": "not_found", "notice": "The page you were looking for does not exist."}
	case code < http.StatusInternalServerError:
		body = echo.Map{"error": http.StatusText(code)}
	default:
		c.Logger().Error(err)
		body = echo.Map{"error": "internal_server_error", "notice": "Something went wrong on our end."}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, body)
}
