package auth

const (
	ContextKeyAccountID = "account_id"
	ContextKeyEmail     = "email"

	jsonKeyError = "error"

	headerAuthorization = "Authorization"

	bearerScheme    = "bearer"
	authHeaderParts = 2
)

const (
	msgAccessTokenRequired     = "access token is required"
	msgInvalidOrExpiredToken   = "invalid or expired token"
	msgAccessDenied            = "access denied"
	msgNotAuthenticated        = "not authenticated"
	msgInvalidAccountIDCtx     = "invalid account ID in context"
	msgInvalidEmailCtx         = "invalid email in context"
	msgUnexpectedSigningMethod = "unexpected signing method: %v"
	msgTokenParseFailed        = "failed to parse token: %w"
	msgInvalidTokenClaims      = "invalid token claims"
)
