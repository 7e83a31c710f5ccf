package itinerary

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary is a trip plan owned by an account, composed of dated activities.
type Itinerary struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Activities  []Activity
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Activity struct {
	ID          uuid.UUID
	ItineraryID uuid.UUID
	Name        string
	Date        time.Time
	Location    string
	Notes       string
	CreatedAt   time.Time
}

type CreateItineraryInput struct {
	AccountID   uuid.UUID
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Activities  []ActivityInput
}

// UpdateItineraryInput replaces the itinerary fields wholesale. A non-nil
// Activities slice replaces the activity list; nil leaves it untouched.
type UpdateItineraryInput struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Activities  []ActivityInput
}

type ActivityInput struct {
	Name     string
	Date     time.Time
	Location string
	Notes    string
}
