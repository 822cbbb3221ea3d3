package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"stepwise/internal/delivery/http/response"
	domainerrors "stepwise/internal/domain/errors"
)

// ErrorMiddleware turns errors bubbling out of handlers into detail bodies.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. AppErrors carry
// their own status and message; everything else collapses into a logged 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// Bearer-scheme challenge on every authentication failure.
		if appErr.HTTPCode() == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}

		if jsonErr := response.Error(c, appErr.HTTPCode(), appErr.Message()); jsonErr != nil {
			m.logger.Error("Failed to write error response", slog.Any("error", jsonErr))
		}

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		if jsonErr := response.Error(c, httpErr.Code, message); jsonErr != nil {
			m.logger.Error("Failed to write error response", slog.Any("error", jsonErr))
		}

		return
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	if jsonErr := response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message()); jsonErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", jsonErr))
	}
}
