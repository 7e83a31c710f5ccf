package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"school-portal/internal/repository"
)

type SchoolHandler struct {
	schoolRepo repository.SchoolRepository
	logos      LogoResolver
}

func NewSchoolHandler(schoolRepo repository.SchoolRepository, logos LogoResolver) *SchoolHandler {
	return &SchoolHandler{schoolRepo: schoolRepo, logos: logos}
}

type School struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

func (h *SchoolHandler) List(c echo.Context) error {
	schools, err := h.schoolRepo.List(c.Request().Context())
	if err != nil {
		return err
	}

	dtos := make([]School, 0, len(schools))
	for _, s := range schools {
		logoURL, err := h.logos.ResolveLogoURL(s.LogoKey)
		if err != nil {
			return respondError(c, http.StatusInternalServerError, msgResolveLogoFail)
		}
		dtos = append(dtos, School{ID: s.ID.String(), Name: s.Name, LogoURL: logoURL})
	}

	return c.JSON(http.StatusOK, dtos)
}
