package db

import "github.com/google/uuid"

// NewID returns a UUIDv7 string: a millisecond timestamp followed by random bits,
// so ids sort by creation time and need no central allocator.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
