package repository

import (
	"context"

	"github.com/google/uuid"

	"school-portal/internal/authz"
	"school-portal/internal/domain/accesscard"
	"school-portal/internal/domain/account"
	"school-portal/internal/domain/itinerary"
	"school-portal/internal/domain/school"
)

// Consumer-side interfaces for the handlers and the authorization gate.
// The postgres package provides the concrete implementations.

type AccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
	// GetByEmail resolves an account by primary email first, then by any
	// access card email bound to it.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}

type AccessCardRepository interface {
	// ListByAccount returns the account's cards in creation order with
	// school metadata and enrollment counts resolved.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]accesscard.AccessCard, error)
}

type PermissionRepository interface {
	Lookup(ctx context.Context, resourceType, resourceName string) (authz.RuleSet, error)
}

type SchoolRepository interface {
	List(ctx context.Context) ([]school.School, error)
}

type ItineraryRepository interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]itinerary.Itinerary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*itinerary.Itinerary, error)
	Create(ctx context.Context, input itinerary.CreateItineraryInput) (*itinerary.Itinerary, error)
	Update(ctx context.Context, id uuid.UUID, input itinerary.UpdateItineraryInput) (*itinerary.Itinerary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
