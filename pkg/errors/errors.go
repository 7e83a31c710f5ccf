package errors

import (
	"errors"
	"fmt"
)

// Domain errors - Sentinel errors for use with errors.Is()
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrBadRequest         = errors.New("bad request")
	ErrConflict           = errors.New("resource already exists")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation error")
	ErrInvalidInput       = errors.New("invalid input")

	// Authorization taxonomy. NoPermissionConfigured and RulesNotSatisfied
	// are both denials but must stay distinguishable server-side: the former
	// is a configuration defect, the latter an ordinary "no".
	// StoreUnavailable is not a policy decision at all.
	ErrNoPermissionConfigured = errors.New("no permission configured for resource")
	ErrRulesNotSatisfied      = errors.New("permission rules not satisfied")
	ErrStoreUnavailable       = errors.New("backing store unavailable")
)

// Custom error type with context
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Constructors
func NotFound(msg string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: msg, Err: ErrNotFound}
}

func Unauthenticated(msg string) *AppError {
	return &AppError{Code: "UNAUTHENTICATED", Message: msg, Err: ErrUnauthenticated}
}

func Forbidden(msg string) *AppError {
	return &AppError{Code: "FORBIDDEN", Message: msg, Err: ErrForbidden}
}

func BadRequest(msg string) *AppError {
	return &AppError{Code: "BAD_REQUEST", Message: msg, Err: ErrBadRequest}
}

func Conflict(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Message: msg, Err: ErrConflict}
}

func InternalServer(msg string, err error) *AppError {
	return &AppError{Code: "INTERNAL_SERVER_ERROR", Message: msg, Err: err}
}

func InvalidCredentials() *AppError {
	return &AppError{Code: "INVALID_CREDENTIALS", Message: "invalid email or password", Err: ErrInvalidCredentials}
}

func NoPermissionConfigured(resourceType, resourceName string) *AppError {
	return &AppError{
		Code:    "NO_PERMISSION_CONFIGURED",
		Message: fmt.Sprintf("no permission configured for %s/%s", resourceType, resourceName),
		Err:     ErrNoPermissionConfigured,
	}
}

func RulesNotSatisfied(msg string) *AppError {
	return &AppError{Code: "RULES_NOT_SATISFIED", Message: msg, Err: ErrRulesNotSatisfied}
}

// StoreUnavailable wraps a lookup failure so callers can tell "we could not
// tell" apart from a policy deny. The underlying error stays on the chain.
func StoreUnavailable(msg string, err error) *AppError {
	return &AppError{
		Code:    "STORE_UNAVAILABLE",
		Message: msg,
		Err:     fmt.Errorf("%w: %w", ErrStoreUnavailable, err),
	}
}
