// Package services contains the server-side business logic. Services are
// stateless: everything they need is passed to their constructors, and
// every per-resource call is scoped by the caller's identity id.
package services

import (
	"time"

	"github.com/google/uuid"
)

var (
	timeNow = time.Now
	newID   = uuid.NewString
)

// now returns the current UTC time at the precision PostgreSQL stores.
func now() time.Time {
	return timeNow().UTC().Truncate(time.Microsecond)
}
