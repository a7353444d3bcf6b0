package settings

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/elsonbaty123/wagbty2/models"
	"github.com/elsonbaty123/wagbty2/validation"
)

// RoleFields is the role-specific part of a profile update. Exactly one
// variant matches the user's role; cross-role fields never leak into a
// payload.
type RoleFields interface {
	isRoleFields()
}

type CustomerFields struct {
	Address      string
	DeliveryZone string
}

func (CustomerFields) isRoleFields() {}

type ChefFields struct {
	Specialty string
	Bio       string
}

func (ChefFields) isRoleFields() {}

// ProfileUpdate is the payload sent to the user-update collaborator.
type ProfileUpdate struct {
	Name     string
	Email    string
	Phone    string
	ImageURL string
	Role     RoleFields
}

// Fields flattens the update into gorm column assignments.
func (u ProfileUpdate) Fields() map[string]any {
	m := map[string]any{
		"name":      u.Name,
		"email":     u.Email,
		"phone":     u.Phone,
		"image_url": u.ImageURL,
	}
	switch rf := u.Role.(type) {
	case CustomerFields:
		m["address"] = rf.Address
		m["delivery_zone"] = rf.DeliveryZone
	case ChefFields:
		m["specialty"] = rf.Specialty
		m["bio"] = rf.Bio
	}
	return m
}

// AttachImage converts an uploaded image to an inline data URI and stages it
// as the candidate profile picture. No size or type limit is enforced.
func (s *Session) AttachImage(data []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	uri := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
	s.Draft.ImageURL = uri
	return uri
}

// RemoveImage restores the role default avatar and persists it immediately,
// without waiting for Save.
func (s *Session) RemoveImage(ctx context.Context) error {
	if !s.removingImage.acquire() {
		return ErrBusy
	}
	defer s.removingImage.release()

	def := s.user.DefaultAvatar()
	if err := s.deps.Users.UpdateUser(ctx, s.user.ID, map[string]any{"image_url": def}); err != nil {
		return updateFailure(err)
	}
	s.Draft.ImageURL = def
	s.user.ImageURL = def
	return nil
}

// Save validates the draft and persists common fields plus exactly the
// current role's fields. The update collaborator is never called when
// validation fails.
func (s *Session) Save(ctx context.Context) error {
	if key := validation.ValidateEmail(s.Draft.Email); key != "" {
		return &Failure{TitleKey: "error_in_email", MessageKey: key}
	}
	if !s.saving.acquire() {
		return ErrBusy
	}
	defer s.saving.release()

	upd := ProfileUpdate{
		Name:     s.Draft.Name,
		Email:    s.Draft.Email,
		Phone:    s.Draft.Phone,
		ImageURL: s.Draft.ImageURL,
	}
	switch s.user.Role {
	case models.RoleCustomer:
		upd.Role = CustomerFields{Address: s.Draft.Address, DeliveryZone: s.Draft.DeliveryZone}
	case models.RoleChef:
		upd.Role = ChefFields{Specialty: s.Draft.Specialty, Bio: s.Draft.Bio}
	}

	if err := s.deps.Users.UpdateUser(ctx, s.user.ID, upd.Fields()); err != nil {
		return updateFailure(err)
	}

	s.user.Name = upd.Name
	s.user.Email = upd.Email
	s.user.Phone = upd.Phone
	s.user.ImageURL = upd.ImageURL
	switch rf := upd.Role.(type) {
	case CustomerFields:
		s.user.Address = rf.Address
		s.user.DeliveryZone = rf.DeliveryZone
	case ChefFields:
		s.user.Specialty = rf.Specialty
		s.user.Bio = rf.Bio
	}
	return nil
}
