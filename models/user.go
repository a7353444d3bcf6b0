package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleChef     UserRole = "chef"
	RoleAdmin    UserRole = "admin"
	RoleDelivery UserRole = "delivery"
)

// AccountStatus tracks admin approval of chef and delivery accounts
type AccountStatus string

const (
	AccountPendingApproval AccountStatus = "pending_approval"
	AccountActive          AccountStatus = "active"
	AccountRejected        AccountStatus = "rejected"
	AccountSuspended       AccountStatus = "suspended"
)

// AvailabilityStatus is the chef tri-state controlling whether new orders
// route to them directly or queue as waiting_for_chef.
type AvailabilityStatus string

const (
	StatusAvailable AvailabilityStatus = "available"
	StatusBusy      AvailabilityStatus = "busy"
	StatusClosed    AvailabilityStatus = "closed"
)

// Default avatars restored when a user removes their profile picture
const (
	DefaultChefAvatar     = "https://placehold.co/100x100.png?text=chef"
	DefaultCustomerAvatar = "https://placehold.co/100x100.png"
)

type User struct {
	ID            string        `json:"id" gorm:"primaryKey"`
	Name          string        `json:"name" gorm:"not null"`
	Email         string        `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash  string        `json:"-" gorm:"not null"`
	Role          UserRole      `json:"role" gorm:"not null;default:'customer'"`
	AccountStatus AccountStatus `json:"account_status" gorm:"default:'active'"`
	Gender        string        `json:"gender,omitempty"`
	Phone         string        `json:"phone"`
	ImageURL      string        `json:"image_url"`

	// Customer-specific
	Address      string `json:"address,omitempty"`
	DeliveryZone string `json:"delivery_zone,omitempty"`

	// Chef-specific
	Specialty          string             `json:"specialty,omitempty"`
	Bio                string             `json:"bio,omitempty"`
	Rating             float64            `json:"rating,omitempty" gorm:"default:0"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status,omitempty"`

	// Delivery-specific
	VehicleType  string `json:"vehicle_type,omitempty"`
	LicensePlate string `json:"license_plate,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// DefaultAvatar returns the role-appropriate fallback profile picture.
func (u *User) DefaultAvatar() string {
	if u.Role == RoleChef {
		return DefaultChefAvatar
	}
	return DefaultCustomerAvatar
}

// EffectiveAvailability treats an unset status as available.
func (u *User) EffectiveAvailability() AvailabilityStatus {
	if u.AvailabilityStatus == "" {
		return StatusAvailable
	}
	return u.AvailabilityStatus
}
