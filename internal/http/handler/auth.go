package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"school-portal/internal/auth"
	"school-portal/internal/repository"
	apperrors "school-portal/pkg/errors"
	"school-portal/pkg/password"
	"school-portal/pkg/validator"
)

// Pre-computed bcrypt hash (cost 12) used to equalize timing on failed
// lookups. The plaintext behind it is irrelevant.
const dummyBcryptHash = "$2a$12$dWR5CQpS4zNHLavLSIr4o.P6QDQEUJKv7mJ7WekUHHqyRSRMJzH0S"

type AuthHandler struct {
	accountRepo repository.AccountRepository
	cardRepo    repository.AccessCardRepository
	jwtService  *auth.JWTService
	logos       LogoResolver
}

func NewAuthHandler(accountRepo repository.AccountRepository, cardRepo repository.AccessCardRepository, jwtService *auth.JWTService, logos LogoResolver) *AuthHandler {
	return &AuthHandler{
		accountRepo: accountRepo,
		cardRepo:    cardRepo,
		jwtService:  jwtService,
		logos:       logos,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string       `json:"token"`
	Account LoginAccount `json:"account"`
	Cards   []AccessCard `json:"access_cards"`
}

type LoginAccount struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// Login authenticates by primary email or by any access card email and
// returns a session token plus the account's card set, so the client can
// offer its "pick an active card" selector without a second round trip.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validator.Email(req.Email); err != nil {
		password.Verify("", dummyBcryptHash)
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	ctx := c.Request().Context()
	account, err := h.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			return err
		}
		// Run bcrypt against a dummy hash to prevent a timing oracle on
		// email existence.
		password.Verify(req.Password, dummyBcryptHash)
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	if !password.Verify(req.Password, account.PasswordHash) {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	cards, err := h.cardRepo.ListByAccount(ctx, account.ID)
	if err != nil {
		return err
	}

	token, err := h.jwtService.Generate(account.ID, account.PrimaryEmail)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgGenerateTokenFail)
	}

	dtos, err := cardDTOs(cards, h.logos)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgResolveLogoFail)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Account: LoginAccount{
			AccountID: account.ID.String(),
			Name:      account.Name,
			Email:     account.PrimaryEmail,
		},
		Cards: dtos,
	})
}
