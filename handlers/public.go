package handlers

import (
	"net/http"
	"time"

	"github.com/elsonbaty123/wagbty2/config"
	"github.com/elsonbaty123/wagbty2/models"
	"github.com/elsonbaty123/wagbty2/statemachine"

	"github.com/gin-gonic/gin"
)

// ListDishes returns browsable dishes (public). Hidden dishes never appear.
func ListDishes(c *gin.Context) {
	var dishes []models.Dish
	query := config.DB.Preload("Chef").Preload("Ratings").
		Where("status <> ?", models.DishHidden)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if chefID := c.Query("chef_id"); chefID != "" {
		query = query.Where("chef_id = ?", chefID)
	}

	query.Find(&dishes)

	now := time.Now()
	type dishView struct {
		models.Dish
		EffectivePrice float64 `json:"effective_price"`
		AverageRating  float64 `json:"average_rating"`
	}
	views := make([]dishView, 0, len(dishes))
	for _, d := range dishes {
		views = append(views, dishView{
			Dish:           d,
			EffectivePrice: d.EffectivePrice(now),
			AverageRating:  d.AverageRating(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(views),
		"dishes": views,
	})
}

// GetDish returns a single dish with its ratings
func GetDish(c *gin.Context) {
	var dish models.Dish
	if err := config.DB.Preload("Chef").Preload("Ratings").
		First(&dish, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"dish":            dish,
		"effective_price": dish.EffectivePrice(time.Now()),
		"average_rating":  dish.AverageRating(),
	})
}

// GetStateMachineInfo returns the full order state machine for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{string(models.StatusDelivered), string(models.StatusRejected), string(models.StatusNotDelivered)},
		"description":     "Wagbty Order Lifecycle State Machine",
	})
}
