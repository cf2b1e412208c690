package domain

import "errors"

// Validation failures reported by the course optimizer. All are caller
// errors detected before any search work begins; none are transient and
// none are retried or silently corrected.
var (
	ErrTooFewPlaces         = errors.New("course: fewer than 3 places")
	ErrTooManyPlaces        = errors.New("course: more than 6 places")
	ErrInvalidTransportMode = errors.New("course: unrecognized transport mode")
	ErrInvalidWeightConfig  = errors.New("course: weight configuration must have a positive sum")
	ErrDuplicatePlaceID     = errors.New("course: duplicate place id")
)
