package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func activeCoupon() Coupon {
	now := time.Now()
	return Coupon{
		Code:          "SAVE10",
		DiscountType:  DiscountPercentage,
		DiscountValue: 10,
		StartDate:     now.Add(-time.Hour),
		EndDate:       now.Add(time.Hour),
		IsActive:      true,
		AppliesTo:     "all",
	}
}

func TestCouponValidFor(t *testing.T) {
	now := time.Now()

	t.Run("active coupon inside its window is valid", func(t *testing.T) {
		c := activeCoupon()
		assert.NoError(t, c.ValidFor("dish-1", now))
	})

	t.Run("deactivated coupon", func(t *testing.T) {
		c := activeCoupon()
		c.IsActive = false
		assert.ErrorIs(t, c.ValidFor("dish-1", now), ErrCouponInactive)
	})

	t.Run("not yet started", func(t *testing.T) {
		c := activeCoupon()
		c.StartDate = now.Add(time.Hour)
		assert.ErrorIs(t, c.ValidFor("dish-1", now), ErrCouponNotStarted)
	})

	t.Run("expired", func(t *testing.T) {
		c := activeCoupon()
		c.EndDate = now.Add(-time.Minute)
		assert.ErrorIs(t, c.ValidFor("dish-1", now), ErrCouponExpired)
	})

	t.Run("usage limit reached", func(t *testing.T) {
		c := activeCoupon()
		c.UsageLimit = 5
		c.TimesUsed = 5
		assert.ErrorIs(t, c.ValidFor("dish-1", now), ErrCouponExhausted)
	})

	t.Run("zero usage limit means unlimited", func(t *testing.T) {
		c := activeCoupon()
		c.TimesUsed = 1000
		assert.NoError(t, c.ValidFor("dish-1", now))
	})

	t.Run("specific coupon only matches listed dishes", func(t *testing.T) {
		c := activeCoupon()
		c.AppliesTo = "specific"
		c.ApplicableDishIDs = []string{"dish-1", "dish-2"}
		assert.NoError(t, c.ValidFor("dish-2", now))
		assert.ErrorIs(t, c.ValidFor("dish-3", now), ErrCouponNotApplicable)
	})
}

func TestCouponDiscountAmount(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		c := Coupon{DiscountType: DiscountPercentage, DiscountValue: 25}
		assert.InDelta(t, 50.0, c.DiscountAmount(200), 0.001)
	})

	t.Run("fixed", func(t *testing.T) {
		c := Coupon{DiscountType: DiscountFixed, DiscountValue: 15}
		assert.InDelta(t, 15.0, c.DiscountAmount(200), 0.001)
	})

	t.Run("discount never exceeds the subtotal", func(t *testing.T) {
		c := Coupon{DiscountType: DiscountFixed, DiscountValue: 50}
		assert.InDelta(t, 30.0, c.DiscountAmount(30), 0.001)
	})
}
