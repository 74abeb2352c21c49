package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/samber/oops"

	"github.com/eduplay/platform-api/internal/api/handler"
	"github.com/eduplay/platform-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to the status code of their kind.
//   - Logs internal errors without leaking their cause to the client.
//   - Renders the failure envelope: {"statusCode", "message", "success", "errors"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, details := resolveError(err, log, c)
		if details == nil {
			details = []string{}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, handler.ErrorResponse{
			StatusCode: code,
			Message:    msg,
			Success:    false,
			Errors:     details,
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, []string) {
	var de *domain.Error
	if errors.As(err, &de) {
		if de.Kind == domain.KindInternal {
			logUnexpected(log, c, err)
		}
		return de.Kind.Status(), de.Message, de.Details
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			logUnexpected(log, c, err)
		}
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	logUnexpected(log, c, err)
	return http.StatusInternalServerError, "internal server error", nil
}

func logUnexpected(log zerolog.Logger, c echo.Context, err error) {
	evt := log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID))

	if oe, ok := oops.AsOops(err); ok {
		evt = evt.Str("domain", oe.Domain()).Interface("context", oe.Context())
	}

	evt.Msg("unhandled error")
}
