package settings

import (
	"context"
	"errors"

	"github.com/elsonbaty123/wagbty2/models"
)

// ErrInvalidAvailability rejects status values outside the tri-state.
var ErrInvalidAvailability = errors.New("settings: invalid availability status")

// SetAvailability persists a chef's availability transition. Every
// transition is allowed; the only side effect is the busy → available
// case, which notifies the chef once about orders queued while they
// were busy.
func (s *Session) SetAvailability(ctx context.Context, status models.AvailabilityStatus) error {
	if s.user.Role != models.RoleChef {
		return ErrNotChef
	}
	switch status {
	case models.StatusAvailable, models.StatusBusy, models.StatusClosed:
	default:
		return ErrInvalidAvailability
	}

	old := s.user.EffectiveAvailability()
	if err := s.deps.Users.UpdateUser(ctx, s.user.ID, map[string]any{"availability_status": status}); err != nil {
		return updateFailure(err)
	}
	s.user.AvailabilityStatus = status

	if old == models.StatusBusy && status == models.StatusAvailable {
		queued := 0
		for _, o := range s.deps.Orders.OrdersByChef(s.user.ID) {
			if o.Status == models.StatusWaitingForChef {
				queued++
			}
		}
		if queued > 0 {
			s.deps.Notifier.CreateNotification(ctx, models.Notification{
				RecipientID: s.user.ID,
				TitleKey:    "you_have_pending_orders",
				MessageKey:  "pending_orders_desc",
				Params:      map[string]any{"count": queued},
				Link:        "/chef/orders",
			})
		}
	}
	return nil
}
