package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"school-portal/internal/http/middleware"
	apperrors "school-portal/pkg/errors"
)

// CustomHTTPErrorHandler handles all errors returned by handlers and
// middleware. It maps sentinel errors to HTTP status codes, sanitizes
// internal errors, and logs with request context. The two policy-denial
// sentinels share one client-facing message so a caller cannot tell a
// missing policy from a policy that says no; StoreUnavailable maps to 503
// so "we could not tell" never looks like a deny.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	} else {
		switch {
		case errors.Is(err, apperrors.ErrStoreUnavailable):
			code = http.StatusServiceUnavailable
			message = "Service temporarily unavailable"
		case errors.Is(err, apperrors.ErrUnauthenticated):
			code = http.StatusUnauthorized
			message = "Access token is required"
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			code = http.StatusUnauthorized
			message = "Invalid credentials"
		case errors.Is(err, apperrors.ErrNoPermissionConfigured):
			code = http.StatusForbidden
			message = "Access denied"
		case errors.Is(err, apperrors.ErrRulesNotSatisfied):
			code = http.StatusForbidden
			message = "Access denied"
		case errors.Is(err, apperrors.ErrForbidden):
			code = http.StatusForbidden
			message = "Access denied"
		case errors.Is(err, apperrors.ErrNotFound):
			code = http.StatusNotFound
			message = "Resource not found"
		case errors.Is(err, apperrors.ErrBadRequest):
			code = http.StatusBadRequest
			message = "Bad request"
		case errors.Is(err, apperrors.ErrInvalidInput):
			code = http.StatusBadRequest
			message = "Invalid input"
		case errors.Is(err, apperrors.ErrValidation):
			code = http.StatusBadRequest
			message = "Validation error"
		case errors.Is(err, apperrors.ErrConflict):
			code = http.StatusConflict
			message = "Resource already exists"
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			// Surface the AppError message for client errors only, and never
			// for denials (the generic message is the contract there).
			if code < 500 && code != http.StatusForbidden {
				message = appErr.Message
			}
		}
	}

	requestID := middleware.GetRequestID(c)
	if requestID == "" {
		requestID = c.Response().Header().Get(middleware.RequestIDHeader)
	}
	if requestID == "" {
		requestID = "unknown"
	}

	if code >= 500 {
		c.Logger().Errorf("server error: request_id=%s status=%d error=%v", requestID, code, err)
	} else if errors.Is(err, apperrors.ErrNoPermissionConfigured) {
		// Configuration defect: the resource exists in the route table but
		// has no permission record.
		c.Logger().Errorf("permission gap: request_id=%s error=%v", requestID, err)
	} else {
		c.Logger().Warnf("client error: request_id=%s status=%d error=%v", requestID, code, err)
	}

	if err := c.JSON(code, map[string]interface{}{
		"error":      message,
		"request_id": requestID,
	}); err != nil {
		c.Logger().Error(err)
	}
}
