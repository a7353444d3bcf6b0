package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDishEffectivePrice(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	t.Run("no discount", func(t *testing.T) {
		d := Dish{Price: 100}
		assert.False(t, d.DiscountActive(now))
		assert.InDelta(t, 100.0, d.EffectivePrice(now), 0.001)
	})

	t.Run("active discount with end date", func(t *testing.T) {
		d := Dish{Price: 100, DiscountPercentage: 20, DiscountEndDate: &future}
		assert.True(t, d.DiscountActive(now))
		assert.InDelta(t, 80.0, d.EffectivePrice(now), 0.001)
	})

	t.Run("open-ended discount", func(t *testing.T) {
		d := Dish{Price: 50, DiscountPercentage: 10}
		assert.True(t, d.DiscountActive(now))
		assert.InDelta(t, 45.0, d.EffectivePrice(now), 0.001)
	})

	t.Run("lapsed discount reverts to full price", func(t *testing.T) {
		d := Dish{Price: 100, DiscountPercentage: 20, DiscountEndDate: &past}
		assert.False(t, d.DiscountActive(now))
		assert.InDelta(t, 100.0, d.EffectivePrice(now), 0.001)
	})
}

func TestDishAverageRating(t *testing.T) {
	d := Dish{}
	assert.Zero(t, d.AverageRating())

	d.Ratings = []DishRating{{Rating: 5}, {Rating: 4}, {Rating: 3}}
	assert.InDelta(t, 4.0, d.AverageRating(), 0.001)
}

func TestUserDefaults(t *testing.T) {
	chef := User{Role: RoleChef}
	customer := User{Role: RoleCustomer}

	assert.Equal(t, DefaultChefAvatar, chef.DefaultAvatar())
	assert.Equal(t, DefaultCustomerAvatar, customer.DefaultAvatar())

	assert.Equal(t, StatusAvailable, chef.EffectiveAvailability())
	chef.AvailabilityStatus = StatusBusy
	assert.Equal(t, StatusBusy, chef.EffectiveAvailability())
}
