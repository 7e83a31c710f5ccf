package validator_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"school-portal/pkg/validator"
)

func TestEmail(t *testing.T) {
	assert.NoError(t, validator.Email("pat@example.edu"))
	assert.NoError(t, validator.Email("first.last+tag@sub.example.co"))

	assert.Error(t, validator.Email(""))
	assert.Error(t, validator.Email("no-at-sign"))
	assert.Error(t, validator.Email("missing@tld"))
	assert.Error(t, validator.Email("a@"+strings.Repeat("x", 260)+".com"))
}

func TestPassword(t *testing.T) {
	assert.NoError(t, validator.Password("longenough"))

	assert.Error(t, validator.Password("short"))
	assert.Error(t, validator.Password(strings.Repeat("x", 129)))
}

func TestItineraryTitle(t *testing.T) {
	assert.NoError(t, validator.ItineraryTitle("Fall field trip"))

	assert.Error(t, validator.ItineraryTitle(""))
	assert.Error(t, validator.ItineraryTitle(strings.Repeat("x", 256)))
	assert.Error(t, validator.ItineraryTitle("line\nbreak"))
}

func TestActivityName(t *testing.T) {
	assert.NoError(t, validator.ActivityName("Museum visit"))

	assert.Error(t, validator.ActivityName(""))
	assert.Error(t, validator.ActivityName("tab\there"))
}

func TestLocation(t *testing.T) {
	assert.NoError(t, validator.Location(""))
	assert.NoError(t, validator.Location("City museum"))

	assert.Error(t, validator.Location(strings.Repeat("x", 256)))
}

func TestDateRange(t *testing.T) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, validator.DateRange(start, start))
	assert.NoError(t, validator.DateRange(start, start.AddDate(0, 0, 3)))

	assert.Error(t, validator.DateRange(start.AddDate(0, 0, 1), start))
	assert.Error(t, validator.DateRange(time.Time{}, start))
	assert.Error(t, validator.DateRange(start, time.Time{}))
}
