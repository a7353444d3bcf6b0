package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiscountType distinguishes percentage from fixed-amount coupons
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Coupon redemption failures, surfaced to the customer at order time
var (
	ErrCouponInactive       = errors.New("coupon is not active")
	ErrCouponNotStarted     = errors.New("coupon is not yet valid")
	ErrCouponExpired        = errors.New("coupon has expired")
	ErrCouponExhausted      = errors.New("coupon usage limit reached")
	ErrCouponNotApplicable  = errors.New("coupon does not apply to this dish")
)

type Coupon struct {
	ID                string       `json:"id" gorm:"primaryKey"`
	ChefID            string       `json:"chef_id" gorm:"not null;index"`
	Code              string       `json:"code" gorm:"not null;index"`
	DiscountType      DiscountType `json:"discount_type" gorm:"not null"`
	DiscountValue     float64      `json:"discount_value" gorm:"not null"`
	StartDate         time.Time    `json:"start_date"`
	EndDate           time.Time    `json:"end_date"`
	UsageLimit        int          `json:"usage_limit"`
	TimesUsed         int          `json:"times_used" gorm:"default:0"`
	IsActive          bool         `json:"is_active" gorm:"default:true"`
	AppliesTo         string       `json:"applies_to" gorm:"default:'all'"` // "all" or "specific"
	ApplicableDishIDs []string     `json:"applicable_dish_ids,omitempty" gorm:"serializer:json"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ValidFor checks whether the coupon can be redeemed against a dish right now.
func (c *Coupon) ValidFor(dishID string, now time.Time) error {
	if !c.IsActive {
		return ErrCouponInactive
	}
	if now.Before(c.StartDate) {
		return ErrCouponNotStarted
	}
	if now.After(c.EndDate) {
		return ErrCouponExpired
	}
	if c.UsageLimit > 0 && c.TimesUsed >= c.UsageLimit {
		return ErrCouponExhausted
	}
	if c.AppliesTo == "specific" {
		for _, id := range c.ApplicableDishIDs {
			if id == dishID {
				return nil
			}
		}
		return ErrCouponNotApplicable
	}
	return nil
}

// DiscountAmount computes the discount for a subtotal, never exceeding it.
func (c *Coupon) DiscountAmount(subtotal float64) float64 {
	var d float64
	switch c.DiscountType {
	case DiscountPercentage:
		d = subtotal * c.DiscountValue / 100
	case DiscountFixed:
		d = c.DiscountValue
	}
	if d > subtotal {
		return subtotal
	}
	return d
}
