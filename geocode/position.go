package geocode

import (
	"context"
	"strconv"
)

// Coordinate is a device-reported geographic position
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Position error codes, matching the browser geolocation API
const (
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodeTimeout             = 3
)

// PositionError is a categorized failure from the device location capability
type PositionError struct {
	Code int
}

func (e *PositionError) Error() string {
	switch e.Code {
	case CodePermissionDenied:
		return "geolocation: permission denied"
	case CodePositionUnavailable:
		return "geolocation: position unavailable"
	case CodeTimeout:
		return "geolocation: timed out"
	}
	return "geolocation: error code " + strconv.Itoa(e.Code)
}

// Locator yields a one-shot coordinate, or a *PositionError for the
// categorized failures above.
type Locator interface {
	CurrentPosition(ctx context.Context) (Coordinate, error)
}
