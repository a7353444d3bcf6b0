package handlers

import (
	"net/http"
	"time"

	"github.com/elsonbaty123/wagbty2/config"
	"github.com/elsonbaty123/wagbty2/middleware"
	"github.com/elsonbaty123/wagbty2/models"

	"github.com/gin-gonic/gin"
)

type DishRequest struct {
	Name               string   `json:"name" binding:"required"`
	Description        string   `json:"description"`
	Price              float64  `json:"price" binding:"required,gt=0"`
	ImageURL           string   `json:"image_url"`
	Ingredients        []string `json:"ingredients"`
	PrepTime           int      `json:"prep_time_minutes"`
	Category           string   `json:"category"`
	Status             string   `json:"status"`
	DiscountPercentage float64  `json:"discount_percentage"`
	DiscountEndDate    string   `json:"discount_end_date"` // RFC3339
}

// AddDish creates a dish on the chef's menu
func AddDish(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var req DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish := models.Dish{
		ChefID:             chefID,
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		ImageURL:           req.ImageURL,
		Ingredients:        req.Ingredients,
		PrepTime:           req.PrepTime,
		Category:           req.Category,
		Status:             models.DishAvailable,
		DiscountPercentage: req.DiscountPercentage,
	}
	if req.Status != "" {
		dish.Status = models.DishStatus(req.Status)
	}
	if req.DiscountEndDate != "" {
		end, err := time.Parse(time.RFC3339, req.DiscountEndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "discount_end_date must be RFC3339"})
			return
		}
		dish.DiscountEndDate = &end
	}

	if err := config.DB.Create(&dish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dish"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Dish added", "dish": dish})
}

// UpdateDish edits one of the chef's dishes
func UpdateDish(c *gin.Context) {
	chefID := middleware.GetUserID(c)
	dishID := c.Param("dishId")

	var dish models.Dish
	if err := config.DB.First(&dish, "id = ?", dishID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	if dish.ChefID != chefID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This dish does not belong to you"})
		return
	}

	var req DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":                req.Name,
		"description":         req.Description,
		"price":               req.Price,
		"image_url":           req.ImageURL,
		"ingredients":         req.Ingredients,
		"prep_time":           req.PrepTime,
		"category":            req.Category,
		"discount_percentage": req.DiscountPercentage,
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.DiscountEndDate != "" {
		end, err := time.Parse(time.RFC3339, req.DiscountEndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "discount_end_date must be RFC3339"})
			return
		}
		updates["discount_end_date"] = end
	}

	if err := config.DB.Model(&dish).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update dish"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish updated", "dish": dish})
}

// DeleteDish removes one of the chef's dishes
func DeleteDish(c *gin.Context) {
	chefID := middleware.GetUserID(c)
	dishID := c.Param("dishId")

	var dish models.Dish
	if err := config.DB.First(&dish, "id = ?", dishID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	if dish.ChefID != chefID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This dish does not belong to you"})
		return
	}

	config.DB.Delete(&dish)
	c.JSON(http.StatusOK, gin.H{"message": "Dish deleted", "dish_id": dishID})
}

// GetMyDishes lists all the chef's dishes, hidden ones included
func GetMyDishes(c *gin.Context) {
	chefID := middleware.GetUserID(c)
	var dishes []models.Dish
	config.DB.Preload("Ratings").Where("chef_id = ?", chefID).Find(&dishes)
	c.JSON(http.StatusOK, gin.H{"count": len(dishes), "dishes": dishes})
}

type CouponRequest struct {
	Code              string   `json:"code" binding:"required"`
	DiscountType      string   `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue     float64  `json:"discount_value" binding:"required,gt=0"`
	StartDate         string   `json:"start_date" binding:"required"` // RFC3339
	EndDate           string   `json:"end_date" binding:"required"`
	UsageLimit        int      `json:"usage_limit"`
	AppliesTo         string   `json:"applies_to"` // "all" (default) or "specific"
	ApplicableDishIDs []string `json:"applicable_dish_ids"`
}

// CreateCoupon creates a discount coupon scoped to the chef's dishes
func CreateCoupon(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be RFC3339"})
		return
	}

	var existing models.Coupon
	if result := config.DB.Where("code = ? AND chef_id = ?", req.Code, chefID).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
		return
	}

	coupon := models.Coupon{
		ChefID:            chefID,
		Code:              req.Code,
		DiscountType:      models.DiscountType(req.DiscountType),
		DiscountValue:     req.DiscountValue,
		StartDate:         start,
		EndDate:           end,
		UsageLimit:        req.UsageLimit,
		IsActive:          true,
		AppliesTo:         "all",
		ApplicableDishIDs: req.ApplicableDishIDs,
	}
	if req.AppliesTo == "specific" {
		coupon.AppliesTo = "specific"
	}

	if err := config.DB.Create(&coupon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Coupon created", "coupon": coupon})
}

// GetMyCoupons lists the chef's coupons
func GetMyCoupons(c *gin.Context) {
	chefID := middleware.GetUserID(c)
	var coupons []models.Coupon
	config.DB.Where("chef_id = ?", chefID).Find(&coupons)
	c.JSON(http.StatusOK, gin.H{"count": len(coupons), "coupons": coupons})
}

// DeactivateCoupon turns a coupon off without deleting its usage record
func DeactivateCoupon(c *gin.Context) {
	chefID := middleware.GetUserID(c)
	couponID := c.Param("couponId")

	var coupon models.Coupon
	if err := config.DB.First(&coupon, "id = ?", couponID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}
	if coupon.ChefID != chefID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This coupon does not belong to you"})
		return
	}

	config.DB.Model(&coupon).Update("is_active", false)
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deactivated", "coupon_id": couponID})
}
