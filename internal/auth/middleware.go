package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"school-portal/internal/authz"
	apperrors "school-portal/pkg/errors"
)

type Middleware struct {
	jwtService *JWTService
	gate       *authz.Gate
}

func NewMiddleware(jwtService *JWTService, gate *authz.Gate) *Middleware {
	return &Middleware{
		jwtService: jwtService,
		gate:       gate,
	}
}

// RequireSession authenticates the bearer token and stashes the identity in
// the request context. It does not authorize anything.
func (m *Middleware) RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return respondError(c, http.StatusUnauthorized, msgAccessTokenRequired)
			}

			claims, err := m.jwtService.Verify(token)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, msgInvalidOrExpiredToken)
			}

			c.Set(ContextKeyAccountID, claims.AccountID)
			c.Set(ContextKeyEmail, claims.Email)

			return next(c)
		}
	}
}

// RequireAccess runs the authorization gate for a fixed resource pair.
// The resource identifiers come from the route definition, never from
// request content. Policy denials collapse into one 403 so callers cannot
// tell a missing policy from a policy that says no; store failures
// propagate so they surface as server errors, not denials.
func (m *Middleware) RequireAccess(resourceType, resourceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := GetIdentity(c)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, msgAccessTokenRequired)
			}

			decision, err := m.gate.Authorize(c.Request().Context(), identity, resourceType, resourceName)
			if err != nil {
				return apperrors.StoreUnavailable("authorization check failed", err)
			}

			if !decision.Allowed {
				return m.respondDenied(c, decision, resourceType, resourceName)
			}

			return next(c)
		}
	}
}

func (m *Middleware) respondDenied(c echo.Context, decision authz.Decision, resourceType, resourceName string) error {
	switch decision.Reason {
	case authz.DenyUnauthenticated:
		return respondError(c, http.StatusUnauthorized, msgAccessTokenRequired)
	case authz.DenyNoPermission:
		// Server-side configuration gap, not a user problem. Logged loudly,
		// but the caller still just sees a deny.
		c.Logger().Errorf("no permission configured for %s/%s", resourceType, resourceName)
		return respondError(c, http.StatusForbidden, msgAccessDenied)
	default:
		c.Logger().Warnf("access denied for %s/%s: %s", resourceType, resourceName, decision.Reason)
		return respondError(c, http.StatusForbidden, msgAccessDenied)
	}
}

func extractBearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(headerAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.Fields(authHeader)
	if len(parts) != authHeaderParts || strings.ToLower(parts[0]) != bearerScheme {
		return ""
	}

	return parts[1]
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}

// GetIdentity rebuilds the authenticated identity from the request context.
func GetIdentity(c echo.Context) (*authz.Identity, error) {
	accountID, err := GetAccountID(c)
	if err != nil {
		return nil, err
	}

	email, _ := c.Get(ContextKeyEmail).(string)

	return &authz.Identity{AccountID: accountID, Email: email}, nil
}

func GetAccountID(c echo.Context) (uuid.UUID, error) {
	accountID := c.Get(ContextKeyAccountID)
	if accountID == nil {
		return uuid.Nil, apperrors.Unauthenticated(msgNotAuthenticated)
	}

	id, ok := accountID.(uuid.UUID)
	if !ok {
		return uuid.Nil, apperrors.InternalServer(msgInvalidAccountIDCtx, nil)
	}

	return id, nil
}
