package school

import (
	"time"

	"github.com/google/uuid"
)

// School is static reference data. LogoKey is either an object key in the
// logo bucket or a plain URL, depending on deployment.
type School struct {
	ID        uuid.UUID
	Name      string
	LogoKey   string
	CreatedAt time.Time
}
