package apperr

import "errors"

var (
	// ErrMissingAPIKey indicates the generator credential was not configured.
	// The run is skipped cleanly rather than failed.
	ErrMissingAPIKey = errors.New("missing api key")
)
