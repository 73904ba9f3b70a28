package utils

import "github.com/google/uuid"

// NewID generates a resource identifier. Users, notes, folders, and
// tags all share the same uuid format.
func NewID() string {
	return uuid.NewString()
}

// IsValidID reports whether id parses as a uuid.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
