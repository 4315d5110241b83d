package search

import (
	"errors"
	"fmt"
)

// ErrMissingParameters is returned when a required search field is absent.
// Detected before any network call; never retried.
var ErrMissingParameters = errors.New("missing required query parameters")

// MetadataError reports failure of the one-shot metadata fetch. Unlike
// pricing emptiness this is terminal: metadata drives the display fields
// users need to trust a price, so there is no partial result.
type MetadataError struct {
	Status int // upstream HTTP status, 0 for transport-level failures
	Err    error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("metadata fetch failed: %v", e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}
