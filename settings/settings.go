// Package settings implements the profile settings workflow: an ephemeral
// editing session over a user snapshot, persisted through injected
// collaborators rather than ambient globals.
package settings

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/elsonbaty123/wagbty2/geocode"
	"github.com/elsonbaty123/wagbty2/models"
)

var (
	// ErrNotAuthenticated means there is no user to edit; callers should
	// redirect to the login surface.
	ErrNotAuthenticated = errors.New("settings: no authenticated user")
	// ErrBusy rejects a second trigger of an operation already in flight.
	ErrBusy = errors.New("settings: operation already in progress")
	// ErrNotChef guards the chef-only availability transition.
	ErrNotChef = errors.New("settings: availability status is chef-only")
)

// UserUpdater persists partial profile updates. Column names follow the
// models.User gorm schema.
type UserUpdater interface {
	UpdateUser(ctx context.Context, userID string, fields map[string]any) error
}

// OrderQuery reads a chef's orders; synchronous by contract.
type OrderQuery interface {
	OrdersByChef(chefID string) []models.Order
}

// Notifier accepts a one-shot notification. Fire-and-forget: ownership of
// the notification transfers immediately, failures are not surfaced here.
type Notifier interface {
	CreateNotification(ctx context.Context, n models.Notification)
}

// Geocoder resolves a coordinate to a formatted address.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, coord geocode.Coordinate, lang string) (string, error)
}

// Deps are the collaborators a session works through.
type Deps struct {
	Users    UserUpdater
	Orders   OrderQuery
	Notifier Notifier
	Geocoder Geocoder
	// Locator is nil when the device has no location capability.
	Locator geocode.Locator
	// MapsAPIKey gates the geocoding network path. When empty the session
	// falls back to a raw-coordinate address and never calls the Geocoder.
	MapsAPIKey string
	// Language is the active display language, passed to the Geocoder.
	Language string
}

// Failure is a user-facing error carrying i18n message keys for the toast
// title and description. Detail, when set, replaces the translated
// description with a collaborator-supplied message.
type Failure struct {
	TitleKey   string
	MessageKey string
	Detail     string
}

func (f *Failure) Error() string {
	if f.Detail != "" {
		return f.TitleKey + ": " + f.Detail
	}
	return f.TitleKey + ": " + f.MessageKey
}

func updateFailure(err error) *Failure {
	f := &Failure{TitleKey: "update_error", MessageKey: "update_error_desc"}
	if err != nil && err.Error() != "" {
		f.Detail = err.Error()
	}
	return f
}

// Draft is the session-local editable copy of the profile fields. It is
// seeded from the user snapshot on load and discarded with the session.
type Draft struct {
	Name     string
	Email    string
	Phone    string
	ImageURL string

	// Customer-only
	Address      string
	DeliveryZone string

	// Chef-only
	Specialty string
	Bio       string
}

// Session mediates one user's profile editing. It is not meant for
// concurrent use by multiple editors; the busy flags only guard against
// duplicate triggers of the same operation.
type Session struct {
	deps Deps
	user models.User

	Draft Draft

	saving           busyFlag
	removingImage    busyFlag
	fetchingLocation busyFlag
}

// NewSession seeds a draft from the current user. A nil user yields
// ErrNotAuthenticated.
func NewSession(user *models.User, deps Deps) (*Session, error) {
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	s := &Session{deps: deps, user: *user}
	s.Draft = Draft{
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		ImageURL: user.ImageURL,
	}
	switch user.Role {
	case models.RoleCustomer:
		s.Draft.Address = user.Address
		s.Draft.DeliveryZone = user.DeliveryZone
	case models.RoleChef:
		s.Draft.Specialty = user.Specialty
		s.Draft.Bio = user.Bio
	}
	return s, nil
}

// User returns the current snapshot, including updates applied by this session.
func (s *Session) User() models.User { return s.user }

func (s *Session) Saving() bool           { return s.saving.held() }
func (s *Session) RemovingImage() bool    { return s.removingImage.held() }
func (s *Session) FetchingLocation() bool { return s.fetchingLocation.held() }

// busyFlag guards one long-running operation. Acquire fails instead of
// blocking so a duplicate trigger is rejected, not queued.
type busyFlag struct {
	v atomic.Bool
}

func (b *busyFlag) acquire() bool { return b.v.CompareAndSwap(false, true) }
func (b *busyFlag) release()      { b.v.Store(false) }
func (b *busyFlag) held() bool    { return b.v.Load() }
