package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"school-portal/internal/auth"
	"school-portal/internal/authz"
	apperrors "school-portal/pkg/errors"
)

// AccessHandler exposes the authorization gate for page routing: the client
// probes GET /api/access/:type/:resource before rendering a protected page.
// The resource pair comes from the route path, never from body content.
type AccessHandler struct {
	gate *authz.Gate
}

func NewAccessHandler(gate *authz.Gate) *AccessHandler {
	return &AccessHandler{gate: gate}
}

type AccessResponse struct {
	Allowed bool `json:"allowed"`
}

func (h *AccessHandler) Check(c echo.Context) error {
	identity, err := auth.GetIdentity(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgAccessTokenRequired)
	}

	resourceType := c.Param("type")
	resourceName := c.Param("resource")

	decision, err := h.gate.Authorize(c.Request().Context(), identity, resourceType, resourceName)
	if err != nil {
		return apperrors.StoreUnavailable("authorization check failed", err)
	}

	if !decision.Allowed {
		if decision.Reason == authz.DenyNoPermission {
			c.Logger().Errorf("no permission configured for %s/%s", resourceType, resourceName)
		}
		if decision.Reason == authz.DenyUnauthenticated {
			return respondError(c, http.StatusUnauthorized, msgAccessTokenRequired)
		}
		return respondError(c, http.StatusForbidden, msgAccessDenied)
	}

	return c.JSON(http.StatusOK, AccessResponse{Allowed: true})
}
