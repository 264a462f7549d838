package constant

import "time"

const QUERY_TIMEOUT_DURATION = 5 * time.Second

const (
	LatitudeMin  = -90
	LatitudeMax  = 90
	LongitudeMin = -180
	LongitudeMax = 180

	// Coordinates are stored and serialized with this many fractional digits.
	CoordinatePrecision = 8

	NameMaxLength = 255
)

// Resource names used in not-found responses.
const (
	ResourceRegion  = "Region"
	ResourceProject = "Project"
	ResourcePin     = "Pin"
)
