package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DishStatus controls whether a dish can be ordered or shown
type DishStatus string

const (
	DishAvailable   DishStatus = "available"
	DishUnavailable DishStatus = "unavailable"
	DishHidden      DishStatus = "hidden"
)

type Dish struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	ChefID      string     `json:"chef_id" gorm:"not null;index"`
	Chef        User       `json:"chef,omitempty" gorm:"foreignKey:ChefID"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	Price       float64    `json:"price" gorm:"not null"`
	ImageURL    string     `json:"image_url"`
	Ingredients []string   `json:"ingredients" gorm:"serializer:json"`
	PrepTime    int        `json:"prep_time_minutes"`
	Category    string     `json:"category"`
	Status      DishStatus `json:"status" gorm:"not null;default:'available'"`

	DiscountPercentage float64    `json:"discount_percentage,omitempty"`
	DiscountEndDate    *time.Time `json:"discount_end_date,omitempty"`

	Ratings   []DishRating `json:"ratings,omitempty" gorm:"foreignKey:DishID"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// DiscountActive reports whether the dish discount applies at the given time.
func (d *Dish) DiscountActive(now time.Time) bool {
	if d.DiscountPercentage <= 0 {
		return false
	}
	return d.DiscountEndDate == nil || now.Before(*d.DiscountEndDate)
}

// EffectivePrice returns the unit price with any active discount applied.
func (d *Dish) EffectivePrice(now time.Time) float64 {
	if d.DiscountActive(now) {
		return d.Price * (1 - d.DiscountPercentage/100)
	}
	return d.Price
}

// AverageRating recomputes the mean of all customer ratings (0 when unrated).
func (d *Dish) AverageRating() float64 {
	if len(d.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range d.Ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(d.Ratings))
}

type DishRating struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	DishID       string    `json:"dish_id" gorm:"not null;index"`
	CustomerID   string    `json:"customer_id" gorm:"not null"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating" gorm:"not null"` // 1-5
	Review       string    `json:"review,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
