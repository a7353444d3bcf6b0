package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/elsonbaty123/wagbty2/geocode"
)

// LocationResult carries the resolved address. Warning is non-nil when the
// address is a raw-coordinate fallback produced without a geocoding call.
type LocationResult struct {
	Address string
	Warning *Failure
}

// ResolveLocation turns the device position into a human-readable address
// and stages it in the draft. It runs under its own busy flag so other form
// interactions stay available while it is pending.
func (s *Session) ResolveLocation(ctx context.Context) (LocationResult, error) {
	if s.deps.Locator == nil {
		return LocationResult{}, &Failure{
			TitleKey:   "geolocation_not_supported",
			MessageKey: "geolocation_not_supported_desc",
		}
	}
	if !s.fetchingLocation.acquire() {
		return LocationResult{}, ErrBusy
	}
	defer s.fetchingLocation.release()

	coord, err := s.deps.Locator.CurrentPosition(ctx)
	if err != nil {
		return LocationResult{}, positionFailure(err)
	}

	if s.deps.MapsAPIKey == "" {
		addr := fmt.Sprintf("Lat: %.4f, Lng: %.4f", coord.Lat, coord.Lng)
		s.Draft.Address = addr
		return LocationResult{
			Address: addr,
			Warning: &Failure{TitleKey: "configuration_error", MessageKey: "google_maps_api_key_missing"},
		}, nil
	}

	addr, err := s.deps.Geocoder.ReverseGeocode(ctx, coord, s.deps.Language)
	if err != nil {
		return LocationResult{}, &Failure{
			TitleKey:   "could_not_determine_address_title",
			MessageKey: "could_not_determine_address_desc",
		}
	}
	s.Draft.Address = addr
	return LocationResult{Address: addr}, nil
}

// positionFailure maps the three categorized geolocation errors to distinct
// descriptions; anything else gets the generic failure.
func positionFailure(err error) *Failure {
	var pe *geocode.PositionError
	if !errors.As(err, &pe) {
		return &Failure{
			TitleKey:   "could_not_determine_address_title",
			MessageKey: "could_not_determine_address_desc",
		}
	}
	desc := "failed_to_get_location_desc"
	switch pe.Code {
	case geocode.CodePermissionDenied:
		desc = "geolocation_permission_denied_desc"
	case geocode.CodePositionUnavailable:
		desc = "geolocation_position_unavailable_desc"
	case geocode.CodeTimeout:
		desc = "geolocation_timeout_desc"
	}
	return &Failure{TitleKey: "failed_to_get_location", MessageKey: desc}
}
