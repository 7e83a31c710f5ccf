package validator

import (
	"fmt"
	"regexp"
	"time"
)

const (
	minEmailLength    = 3
	maxEmailLength    = 255
	minPasswordLength = 8
	maxPasswordLength = 128
	maxTitleLength    = 255
	maxNameLength     = 255
	maxLocationLength = 255

	asciiControlStart = 32
	asciiDelete       = 127

	errEmailEmptyFmt        = "email cannot be empty"
	errEmailLengthFmt       = "email must be between %d and %d characters"
	errEmailInvalidFmt      = "invalid email format"
	errPasswordMinLengthFmt = "password must be at least %d characters"
	errPasswordMaxLengthFmt = "password must not exceed %d characters"
	errTitleEmptyFmt        = "title cannot be empty"
	errTitleMaxLengthFmt    = "title must not exceed %d characters"
	errTitleControlFmt      = "title cannot contain control characters"
	errNameEmptyFmt         = "activity name cannot be empty"
	errNameMaxLengthFmt     = "activity name must not exceed %d characters"
	errNameControlFmt       = "activity name cannot contain control characters"
	errLocationMaxLengthFmt = "location must not exceed %d characters"
	errDateRangeFmt         = "end date must not be before start date"
	errDateZeroFmt          = "start and end dates are required"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func Email(email string) error {
	if email == "" {
		return fmt.Errorf(errEmailEmptyFmt)
	}

	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return fmt.Errorf(errEmailLengthFmt, minEmailLength, maxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf(errEmailInvalidFmt)
	}

	return nil
}

func Password(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf(errPasswordMinLengthFmt, minPasswordLength)
	}

	if len(password) > maxPasswordLength {
		return fmt.Errorf(errPasswordMaxLengthFmt, maxPasswordLength)
	}

	return nil
}

func ItineraryTitle(title string) error {
	if title == "" {
		return fmt.Errorf(errTitleEmptyFmt)
	}

	if len(title) > maxTitleLength {
		return fmt.Errorf(errTitleMaxLengthFmt, maxTitleLength)
	}

	if hasControlChars(title) {
		return fmt.Errorf(errTitleControlFmt)
	}

	return nil
}

func ActivityName(name string) error {
	if name == "" {
		return fmt.Errorf(errNameEmptyFmt)
	}

	if len(name) > maxNameLength {
		return fmt.Errorf(errNameMaxLengthFmt, maxNameLength)
	}

	if hasControlChars(name) {
		return fmt.Errorf(errNameControlFmt)
	}

	return nil
}

func Location(location string) error {
	if len(location) > maxLocationLength {
		return fmt.Errorf(errLocationMaxLengthFmt, maxLocationLength)
	}

	return nil
}

func DateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf(errDateZeroFmt)
	}

	if end.Before(start) {
		return fmt.Errorf(errDateRangeFmt)
	}

	return nil
}

func hasControlChars(s string) bool {
	for _, char := range s {
		if char < asciiControlStart || char == asciiDelete {
			return true
		}
	}
	return false
}
