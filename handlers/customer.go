package handlers

import (
	"net/http"
	"time"

	"github.com/elsonbaty123/wagbty2/config"
	"github.com/elsonbaty123/wagbty2/middleware"
	"github.com/elsonbaty123/wagbty2/models"
	"github.com/elsonbaty123/wagbty2/statemachine"

	"github.com/gin-gonic/gin"
)

// Flat fee per delivery; zones all share one rate for now
const deliveryFee = 10.0

type PlaceOrderRequest struct {
	DishID          string `json:"dish_id" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	CouponCode      string `json:"coupon_code"`
	CustomerNotes   string `json:"customer_notes"`
}

// PlaceOrder creates a new order (customer only). Orders for a busy chef
// queue as waiting_for_chef; a closed chef accepts no orders at all.
func PlaceOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var customer models.User
	if err := config.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	var dish models.Dish
	if err := config.DB.First(&dish, "id = ?", req.DishID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	if dish.Status != models.DishAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dish '" + dish.Name + "' is not available"})
		return
	}

	var chef models.User
	if err := config.DB.First(&chef, "id = ?", dish.ChefID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chef not found"})
		return
	}
	if chef.EffectiveAvailability() == models.StatusClosed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Chef's kitchen is currently closed"})
		return
	}

	now := time.Now()
	subtotal := dish.EffectivePrice(now) * float64(req.Quantity)

	// Apply coupon if supplied
	var discount float64
	var appliedCoupon *models.Coupon
	if req.CouponCode != "" {
		var coupon models.Coupon
		if err := config.DB.Where("code = ? AND chef_id = ?", req.CouponCode, chef.ID).
			First(&coupon).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon not found"})
			return
		}
		if err := coupon.ValidFor(dish.ID, now); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		discount = coupon.DiscountAmount(subtotal)
		appliedCoupon = &coupon
	}

	// Busy chefs get their orders queued instead of rejected
	status := models.StatusPendingReview
	if chef.EffectiveAvailability() == models.StatusBusy {
		status = models.StatusWaitingForChef
	}

	// Position of this order among today's orders for the dish
	var todayCount int64
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	config.DB.Model(&models.Order{}).
		Where("dish_id = ? AND created_at >= ?", dish.ID, startOfDay).
		Count(&todayCount)

	order := models.Order{
		CustomerID:           customerID,
		CustomerName:         customer.Name,
		CustomerPhone:        customer.Phone,
		DeliveryAddress:      req.DeliveryAddress,
		DishID:               dish.ID,
		ChefID:               chef.ID,
		Quantity:             req.Quantity,
		Status:               status,
		DailyDishOrderNumber: int(todayCount) + 1,
		Subtotal:             subtotal,
		DeliveryFee:          deliveryFee,
		Discount:             discount,
		Total:                subtotal + deliveryFee - discount,
		CustomerNotes:        req.CustomerNotes,
	}
	if appliedCoupon != nil {
		order.AppliedCouponCode = appliedCoupon.Code
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	if appliedCoupon != nil {
		config.DB.Model(appliedCoupon).Update("times_used", appliedCoupon.TimesUsed+1)
	}

	note := "Order placed by customer"
	if status == models.StatusWaitingForChef {
		note = "Order queued: chef is busy"
	}
	history := models.OrderStatusHistory{
		OrderID:   order.ID,
		ToStatus:  status,
		ChangedBy: customerID,
		Note:      note,
	}
	config.DB.Create(&history)

	config.DB.Preload("Dish").Preload("Chef").First(&order, "id = ?", order.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetMyOrders returns all orders for the logged-in customer
func GetMyOrders(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Dish").Preload("Chef").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order's full detail with history
func GetOrderDetail(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.
		Preload("Dish").
		Preload("Chef").
		Preload("StatusHistory").
		Preload("DeliveryPerson").
		First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	elapsed := time.Since(order.CreatedAt).Minutes()
	c.JSON(http.StatusOK, gin.H{
		"order":           order,
		"minutes_elapsed": int(elapsed),
	})
}

// CancelOrder withdraws an order the chef has not accepted yet
func CancelOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusRejected, "customer"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot cancel order",
			"reason":        err.Error(),
			"current_state": order.Status,
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", models.StatusRejected)

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusRejected,
		ChangedBy:  customerID,
		Note:       "Order cancelled by customer",
	}
	config.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.ID})
}

type RateOrderRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

// RateOrder records a rating for a delivered order and mirrors it onto the dish
func RateOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var req RateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	if order.Status != models.StatusDelivered {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only delivered orders can be rated"})
		return
	}
	if order.Rating != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has already been rated"})
		return
	}

	var customer models.User
	config.DB.First(&customer, "id = ?", customerID)

	config.DB.Model(&order).Updates(map[string]interface{}{
		"rating": req.Rating,
		"review": req.Review,
	})

	rating := models.DishRating{
		DishID:       order.DishID,
		CustomerID:   customerID,
		CustomerName: customer.Name,
		Rating:       req.Rating,
		Review:       req.Review,
	}
	config.DB.Create(&rating)

	// Keep the chef's aggregate rating current
	var dish models.Dish
	if err := config.DB.Preload("Ratings").First(&dish, "id = ?", order.DishID).Error; err == nil {
		config.DB.Model(&models.User{}).Where("id = ?", dish.ChefID).
			Update("rating", dish.AverageRating())
	}

	c.JSON(http.StatusOK, gin.H{"message": "Thank you for your rating!", "order_id": order.ID})
}
