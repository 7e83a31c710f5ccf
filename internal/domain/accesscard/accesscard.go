package accesscard

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is an open string type: matching against permission rules is exact
// string comparison, so new roles can be introduced in configuration without
// touching the evaluator. Validate covers the roles the portal ships with.
type Role string

const (
	RoleStudent    Role = "Student"
	RoleInstructor Role = "Instructor"
	RoleAdmin      Role = "Admin"

	errInvalidRoleFmt = "invalid role: %s"
)

func (r Role) Validate() error {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return nil
	default:
		return fmt.Errorf(errInvalidRoleFmt, r)
	}
}

// AccessCard binds an account to a role at one school, or at every school
// when Global is set. SchoolName and LogoKey are display metadata resolved
// by join; they are not stored on the card itself.
type AccessCard struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Email      string
	Role       Role
	Global     bool
	SchoolID   *uuid.UUID
	SchoolName string
	LogoKey    string
	// Enrollments is the number of enrollment rows referencing this card,
	// resolved by the store. Only meaningful for Student cards.
	Enrollments int
	CreatedAt   time.Time
}

// Valid reports whether the card counts for authorization. A Student card
// is only valid while at least one enrollment references it; Instructor and
// Admin cards are valid by existence alone.
func (c AccessCard) Valid() bool {
	if c.Role == RoleStudent {
		return c.Enrollments > 0
	}
	return true
}
