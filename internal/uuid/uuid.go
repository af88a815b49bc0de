// Package uuid wraps google/uuid with gin parameter binding so that
// resource IDs can be bound directly from URIs and query strings.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID is a google/uuid UUID with gin binding support.
type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam parses a UUID from a URI or form parameter.
// An empty parameter binds to Nil.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
