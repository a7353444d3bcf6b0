package handlers

import (
	"net/http"

	"github.com/elsonbaty123/wagbty2/config"
	"github.com/elsonbaty123/wagbty2/middleware"
	"github.com/elsonbaty123/wagbty2/models"
	"github.com/elsonbaty123/wagbty2/statemachine"

	"github.com/gin-gonic/gin"
)

// GetChefOrders returns all orders addressed to the chef
func GetChefOrders(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var orders []models.Order
	query := config.DB.Preload("Dish").Preload("Customer").Preload("DeliveryPerson").
		Where("chef_id = ?", chefID)

	// Filter by status
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	query.Order("created_at desc").Find(&orders)

	// Group counts by status for the dashboard summary
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// UpdateOrderStatus handles the chef's state transitions
func UpdateOrderStatus(c *gin.Context) {
	chefID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.ChefID != chefID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order is not addressed to you"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, "chef"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", req.Status)

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   req.Status,
		ChangedBy:  chefID,
		Note:       req.Note,
	}
	config.DB.Create(&history)

	// Tell the customer their food is moving
	if req.Status == models.StatusPreparing || req.Status == models.StatusRejected {
		dbNotifier{}.CreateNotification(c.Request.Context(), models.Notification{
			RecipientID: order.CustomerID,
			TitleKey:    "order_status_changed",
			MessageKey:  "order_status_changed_desc",
			Params:      map[string]any{"status": string(req.Status)},
			Link:        "/orders/" + order.ID,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": string(prevStatus),
		"current_status":  string(req.Status),
	})
}
