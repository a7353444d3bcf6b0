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

// GetAvailableOrders shows ready_for_delivery orders with no rider assigned
func GetAvailableOrders(c *gin.Context) {
	var orders []models.Order
	config.DB.Preload("Dish").Preload("Chef").Preload("Customer").
		Where("status = ? AND delivery_person_id IS NULL", models.StatusReadyForDelivery).
		Order("created_at asc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{
		"count":  len(orders),
		"orders": orders,
	})
}

// GetMyDeliveries returns all orders assigned to the logged-in rider
func GetMyDeliveries(c *gin.Context) {
	riderID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Dish").Preload("Chef").Preload("Customer").
		Where("delivery_person_id = ?", riderID).
		Order("updated_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// PickupOrder assigns the order to the rider: ready_for_delivery → out_for_delivery
func PickupOrder(c *gin.Context) {
	riderID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	// Prevent two riders claiming the same order
	if order.DeliveryPersonID != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has already been picked up by another rider"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusOutForDelivery, "delivery"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	var rider models.User
	config.DB.First(&rider, "id = ?", riderID)

	prevStatus := order.Status
	config.DB.Model(&order).Updates(map[string]interface{}{
		"status":               models.StatusOutForDelivery,
		"delivery_person_id":   riderID,
		"delivery_person_name": rider.Name,
	})

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusOutForDelivery,
		ChangedBy:  riderID,
		Note:       "Rider picked up the order",
	}
	config.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order picked up successfully",
		"order_id": order.ID,
		"status":   models.StatusOutForDelivery,
	})
}

// DeliverOrder transitions out_for_delivery → delivered
func DeliverOrder(c *gin.Context) {
	riderID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.DeliveryPersonID == nil || *order.DeliveryPersonID != riderID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the assigned rider for this order"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusDelivered, "delivery"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Invalid state transition",
			"current_status": order.Status,
			"reason":         err.Error(),
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", models.StatusDelivered)

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusDelivered,
		ChangedBy:  riderID,
		Note:       "Order delivered to customer",
	}
	config.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order delivered successfully! 🎉",
		"order_id": order.ID,
		"status":   models.StatusDelivered,
	})
}

type NotDeliveredRequest struct {
	Reason         string                            `json:"reason" binding:"required"`
	Responsibility models.NotDeliveredResponsibility `json:"responsibility" binding:"required,oneof=customer_unavailable customer_refused address_issue external_issue other"`
}

// ReportNotDelivered transitions out_for_delivery → not_delivered with a
// reason and responsibility record
func ReportNotDelivered(c *gin.Context) {
	riderID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.DeliveryPersonID == nil || *order.DeliveryPersonID != riderID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the assigned rider for this order"})
		return
	}

	var req NotDeliveredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusNotDelivered, "delivery"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Invalid state transition",
			"current_status": order.Status,
			"reason":         err.Error(),
		})
		return
	}

	now := time.Now()
	prevStatus := order.Status
	config.DB.Model(&order).Updates(map[string]interface{}{
		"status":                       models.StatusNotDelivered,
		"not_delivered_reason":         req.Reason,
		"not_delivered_responsibility": req.Responsibility,
		"not_delivered_at":             now,
	})

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusNotDelivered,
		ChangedBy:  riderID,
		Note:       "Not delivered: " + req.Reason,
	}
	config.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Delivery failure recorded",
		"order_id": order.ID,
		"status":   models.StatusNotDelivered,
	})
}
