package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"school-portal/internal/auth"
	"school-portal/internal/domain/accesscard"
	"school-portal/internal/repository"
)

// LogoResolver is satisfied by the S3 presigner and by the passthrough
// resolver used when no logo bucket is configured.
type LogoResolver interface {
	ResolveLogoURL(key string) (string, error)
}

type AccessCardHandler struct {
	cardRepo repository.AccessCardRepository
	logos    LogoResolver
}

func NewAccessCardHandler(cardRepo repository.AccessCardRepository, logos LogoResolver) *AccessCardHandler {
	return &AccessCardHandler{cardRepo: cardRepo, logos: logos}
}

type AccessCard struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Global     bool   `json:"global"`
	SchoolID   string `json:"school_id,omitempty"`
	SchoolName string `json:"school_name,omitempty"`
	LogoURL    string `json:"logo_url,omitempty"`
	Valid      bool   `json:"valid"`
}

type InvalidCard struct {
	Email  string `json:"email"`
	School string `json:"school"`
}

// List returns the caller's access cards. If any Student card has no
// enrollment the response is a 400 naming the affected cards: the client
// surfaces these so the account holder can chase the missing enrollment.
func (h *AccessCardHandler) List(c echo.Context) error {
	accountID, err := auth.GetAccountID(c)
	if err != nil {
		return err
	}

	cards, err := h.cardRepo.ListByAccount(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	var invalid []InvalidCard
	for _, card := range cards {
		if !card.Valid() {
			invalid = append(invalid, InvalidCard{Email: card.Email, School: card.SchoolName})
		}
	}

	if len(invalid) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			jsonKeyError:    msgUnenrolledStudentCards,
			"invalid_cards": invalid,
		})
	}

	dtos, err := cardDTOs(cards, h.logos)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgResolveLogoFail)
	}

	return c.JSON(http.StatusOK, dtos)
}

func cardDTOs(cards []accesscard.AccessCard, logos LogoResolver) ([]AccessCard, error) {
	dtos := make([]AccessCard, 0, len(cards))
	for _, card := range cards {
		logoURL, err := logos.ResolveLogoURL(card.LogoKey)
		if err != nil {
			return nil, err
		}

		dto := AccessCard{
			ID:         card.ID.String(),
			Email:      card.Email,
			Role:       string(card.Role),
			Global:     card.Global,
			SchoolName: card.SchoolName,
			LogoURL:    logoURL,
			Valid:      card.Valid(),
		}
		if card.SchoolID != nil {
			dto.SchoolID = card.SchoolID.String()
		}
		dtos = append(dtos, dto)
	}

	return dtos, nil
}
