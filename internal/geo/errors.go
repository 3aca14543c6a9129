package geo

import "errors"

var (
	// ErrTimeZoneNotFound is returned when the timezone API answers but no
	// zone is known for the given coordinates.
	ErrTimeZoneNotFound = errors.New("no timezone found for coordinates")

	// ErrResolutionFailed wraps transport-level failures of the timezone API.
	ErrResolutionFailed = errors.New("timezone resolution failed")
)
