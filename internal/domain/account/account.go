package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is the login identity. An account owns zero or more access cards;
// the primary email is what the owner registered with, but login also
// accepts any access card email.
type Account struct {
	ID           uuid.UUID
	Name         string
	PrimaryEmail string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
