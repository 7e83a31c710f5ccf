package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"school-portal/internal/auth"
	"school-portal/internal/domain/itinerary"
	"school-portal/internal/repository"
	apperrors "school-portal/pkg/errors"
	"school-portal/pkg/validator"
)

type ItineraryHandler struct {
	itineraryRepo repository.ItineraryRepository
}

func NewItineraryHandler(itineraryRepo repository.ItineraryRepository) *ItineraryHandler {
	return &ItineraryHandler{itineraryRepo: itineraryRepo}
}

type ItineraryRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	StartDate   time.Time         `json:"start_date"`
	EndDate     time.Time         `json:"end_date"`
	Activities  []ActivityRequest `json:"activities"`
}

type ActivityRequest struct {
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Notes    string    `json:"notes"`
}

type ItineraryResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	StartDate   time.Time          `json:"start_date"`
	EndDate     time.Time          `json:"end_date"`
	Activities  []ActivityResponse `json:"activities"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type ActivityResponse struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Location string    `json:"location,omitempty"`
	Notes    string    `json:"notes,omitempty"`
}

func (h *ItineraryHandler) List(c echo.Context) error {
	accountID, err := auth.GetAccountID(c)
	if err != nil {
		return err
	}

	itineraries, err := h.itineraryRepo.ListByAccount(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	dtos := make([]ItineraryResponse, 0, len(itineraries))
	for _, it := range itineraries {
		dtos = append(dtos, itineraryDTO(it))
	}

	return c.JSON(http.StatusOK, dtos)
}

func (h *ItineraryHandler) Get(c echo.Context) error {
	it, err := h.ownedItinerary(c)
	if err != nil {
		return h.respondLookupError(c, err)
	}

	return c.JSON(http.StatusOK, itineraryDTO(*it))
}

func (h *ItineraryHandler) Create(c echo.Context) error {
	accountID, err := auth.GetAccountID(c)
	if err != nil {
		return err
	}

	var req ItineraryRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if err := validateItineraryRequest(req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	created, err := h.itineraryRepo.Create(c.Request().Context(), itinerary.CreateItineraryInput{
		AccountID:   accountID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Activities:  activityInputs(req.Activities),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, itineraryDTO(*created))
}

func (h *ItineraryHandler) Update(c echo.Context) error {
	it, err := h.ownedItinerary(c)
	if err != nil {
		return h.respondLookupError(c, err)
	}

	var req ItineraryRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if err := validateItineraryRequest(req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	updated, err := h.itineraryRepo.Update(c.Request().Context(), it.ID, itinerary.UpdateItineraryInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Activities:  activityInputs(req.Activities),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, itineraryDTO(*updated))
}

func (h *ItineraryHandler) Delete(c echo.Context) error {
	it, err := h.ownedItinerary(c)
	if err != nil {
		return h.respondLookupError(c, err)
	}

	if err := h.itineraryRepo.Delete(c.Request().Context(), it.ID); err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, msgItineraryDeleted)
}

// ownedItinerary loads the itinerary in the path and verifies the caller
// owns it. Foreign itineraries come back as not-found to prevent
// enumeration.
func (h *ItineraryHandler) ownedItinerary(c echo.Context) (*itinerary.Itinerary, error) {
	accountID, err := auth.GetAccountID(c)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return nil, apperrors.BadRequest(msgInvalidItineraryID)
	}

	it, err := h.itineraryRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}

	if it.AccountID != accountID {
		return nil, apperrors.NotFound(msgItineraryNotFound)
	}

	return it, nil
}

func (h *ItineraryHandler) respondLookupError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return respondError(c, http.StatusNotFound, msgItineraryNotFound)
	case errors.Is(err, apperrors.ErrBadRequest):
		return respondError(c, http.StatusBadRequest, msgInvalidItineraryID)
	default:
		return err
	}
}

func validateItineraryRequest(req ItineraryRequest) error {
	if err := validator.ItineraryTitle(req.Title); err != nil {
		return err
	}
	if err := validator.DateRange(req.StartDate, req.EndDate); err != nil {
		return err
	}
	for _, a := range req.Activities {
		if err := validator.ActivityName(a.Name); err != nil {
			return err
		}
		if err := validator.Location(a.Location); err != nil {
			return err
		}
	}
	return nil
}

func activityInputs(reqs []ActivityRequest) []itinerary.ActivityInput {
	inputs := make([]itinerary.ActivityInput, 0, len(reqs))
	for _, a := range reqs {
		inputs = append(inputs, itinerary.ActivityInput{
			Name:     a.Name,
			Date:     a.Date,
			Location: a.Location,
			Notes:    a.Notes,
		})
	}
	return inputs
}

func itineraryDTO(it itinerary.Itinerary) ItineraryResponse {
	activities := make([]ActivityResponse, 0, len(it.Activities))
	for _, a := range it.Activities {
		activities = append(activities, ActivityResponse{
			ID:       a.ID.String(),
			Name:     a.Name,
			Date:     a.Date,
			Location: a.Location,
			Notes:    a.Notes,
		})
	}

	return ItineraryResponse{
		ID:          it.ID.String(),
		Title:       it.Title,
		Description: it.Description,
		StartDate:   it.StartDate,
		EndDate:     it.EndDate,
		Activities:  activities,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
