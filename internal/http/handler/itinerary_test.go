package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-portal/internal/auth"
	"school-portal/internal/domain/itinerary"
	"school-portal/internal/http/handler"
	apperrors "school-portal/pkg/errors"
)

type stubItineraryRepo struct {
	itineraries []itinerary.Itinerary
	byID        *itinerary.Itinerary
	created     *itinerary.Itinerary
	updated     *itinerary.Itinerary
	err         error

	lastCreate itinerary.CreateItineraryInput
	lastUpdate itinerary.UpdateItineraryInput
	deletedID  uuid.UUID
}

func (s *stubItineraryRepo) ListByAccount(context.Context, uuid.UUID) ([]itinerary.Itinerary, error) {
	return s.itineraries, s.err
}

func (s *stubItineraryRepo) GetByID(_ context.Context, id uuid.UUID) (*itinerary.Itinerary, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.byID == nil || s.byID.ID != id {
		return nil, apperrors.NotFound("itinerary not found")
	}
	return s.byID, nil
}

func (s *stubItineraryRepo) Create(_ context.Context, input itinerary.CreateItineraryInput) (*itinerary.Itinerary, error) {
	s.lastCreate = input
	return s.created, s.err
}

func (s *stubItineraryRepo) Update(_ context.Context, _ uuid.UUID, input itinerary.UpdateItineraryInput) (*itinerary.Itinerary, error) {
	s.lastUpdate = input
	return s.updated, s.err
}

func (s *stubItineraryRepo) Delete(_ context.Context, id uuid.UUID) error {
	s.deletedID = id
	return s.err
}

func itineraryContext(method, target, body string, accountID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(auth.ContextKeyAccountID, accountID)
	return c, rec
}

func sampleItinerary(accountID uuid.UUID) *itinerary.Itinerary {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return &itinerary.Itinerary{
		ID:        uuid.New(),
		AccountID: accountID,
		Title:     "Fall field trip",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 3),
		Activities: []itinerary.Activity{
			{ID: uuid.New(), Name: "Museum visit", Date: start, Location: "City museum"},
		},
	}
}

func TestItineraryList(t *testing.T) {
	accountID := uuid.New()
	repo := &stubItineraryRepo{itineraries: []itinerary.Itinerary{*sampleItinerary(accountID)}}
	h := handler.NewItineraryHandler(repo)

	c, rec := itineraryContext(http.MethodGet, "/api/itineraries", "", accountID)
	require.NoError(t, h.List(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []handler.ItineraryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Fall field trip", resp[0].Title)
	require.Len(t, resp[0].Activities, 1)
	assert.Equal(t, "Museum visit", resp[0].Activities[0].Name)
}

func TestItineraryGetOwned(t *testing.T) {
	accountID := uuid.New()
	it := sampleItinerary(accountID)
	h := handler.NewItineraryHandler(&stubItineraryRepo{byID: it})

	c, rec := itineraryContext(http.MethodGet, "/", "", accountID)
	c.SetParamNames("id")
	c.SetParamValues(it.ID.String())
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), it.ID.String())
}

func TestItineraryGetForeignIsNotFound(t *testing.T) {
	owner := uuid.New()
	it := sampleItinerary(owner)
	h := handler.NewItineraryHandler(&stubItineraryRepo{byID: it})

	// A different account asking for the same id must get the same response
	// as a nonexistent itinerary.
	c, rec := itineraryContext(http.MethodGet, "/", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(it.ID.String())
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItineraryGetBadID(t *testing.T) {
	h := handler.NewItineraryHandler(&stubItineraryRepo{})

	c, rec := itineraryContext(http.MethodGet, "/", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestItineraryCreate(t *testing.T) {
	accountID := uuid.New()
	created := sampleItinerary(accountID)
	repo := &stubItineraryRepo{created: created}
	h := handler.NewItineraryHandler(repo)

	body := `{
		"title": "Fall field trip",
		"description": "Three days downtown",
		"start_date": "2026-10-01T00:00:00Z",
		"end_date": "2026-10-04T00:00:00Z",
		"activities": [
			{"name": "Museum visit", "date": "2026-10-01T00:00:00Z", "location": "City museum"}
		]
	}`
	c, rec := itineraryContext(http.MethodPost, "/api/itineraries", body, accountID)
	require.NoError(t, h.Create(c))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, accountID, repo.lastCreate.AccountID)
	assert.Equal(t, "Fall field trip", repo.lastCreate.Title)
	require.Len(t, repo.lastCreate.Activities, 1)
	assert.Equal(t, "Museum visit", repo.lastCreate.Activities[0].Name)
}

func TestItineraryCreateRejectsReversedDates(t *testing.T) {
	h := handler.NewItineraryHandler(&stubItineraryRepo{})

	body := `{
		"title": "Backwards",
		"start_date": "2026-10-04T00:00:00Z",
		"end_date": "2026-10-01T00:00:00Z"
	}`
	c, rec := itineraryContext(http.MethodPost, "/api/itineraries", body, uuid.New())
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestItineraryCreateRejectsEmptyTitle(t *testing.T) {
	h := handler.NewItineraryHandler(&stubItineraryRepo{})

	body := `{
		"title": "",
		"start_date": "2026-10-01T00:00:00Z",
		"end_date": "2026-10-04T00:00:00Z"
	}`
	c, rec := itineraryContext(http.MethodPost, "/api/itineraries", body, uuid.New())
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestItineraryUpdate(t *testing.T) {
	accountID := uuid.New()
	it := sampleItinerary(accountID)
	repo := &stubItineraryRepo{byID: it, updated: it}
	h := handler.NewItineraryHandler(repo)

	body := `{
		"title": "Fall field trip, revised",
		"start_date": "2026-10-02T00:00:00Z",
		"end_date": "2026-10-05T00:00:00Z",
		"activities": []
	}`
	c, rec := itineraryContext(http.MethodPut, "/", body, accountID)
	c.SetParamNames("id")
	c.SetParamValues(it.ID.String())
	require.NoError(t, h.Update(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Fall field trip, revised", repo.lastUpdate.Title)
	assert.NotNil(t, repo.lastUpdate.Activities)
	assert.Empty(t, repo.lastUpdate.Activities)
}

func TestItineraryDelete(t *testing.T) {
	accountID := uuid.New()
	it := sampleItinerary(accountID)
	repo := &stubItineraryRepo{byID: it}
	h := handler.NewItineraryHandler(repo)

	c, rec := itineraryContext(http.MethodDelete, "/", "", accountID)
	c.SetParamNames("id")
	c.SetParamValues(it.ID.String())
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, it.ID, repo.deletedID)
}

func TestItineraryDeleteForeignIsNotFound(t *testing.T) {
	owner := uuid.New()
	it := sampleItinerary(owner)
	repo := &stubItineraryRepo{byID: it}
	h := handler.NewItineraryHandler(repo)

	c, rec := itineraryContext(http.MethodDelete, "/", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(it.ID.String())
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, uuid.Nil, repo.deletedID)
}
