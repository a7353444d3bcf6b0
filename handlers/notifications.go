package handlers

import (
	"net/http"

	"github.com/elsonbaty123/wagbty2/config"
	"github.com/elsonbaty123/wagbty2/middleware"
	"github.com/elsonbaty123/wagbty2/models"

	"github.com/gin-gonic/gin"
)

// GetMyNotifications lists the caller's notifications, newest first
func GetMyNotifications(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var notifications []models.Notification
	query := config.DB.Where("recipient_id = ?", userID)
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}
	query.Order("created_at desc").Find(&notifications)

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":         len(notifications),
		"unread":        unread,
		"notifications": notifications,
	})
}

// MarkNotificationRead marks one of the caller's notifications as read
func MarkNotificationRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	notificationID := c.Param("id")

	var notification models.Notification
	if err := config.DB.First(&notification, "id = ?", notificationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	if notification.RecipientID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This notification is not addressed to you"})
		return
	}

	config.DB.Model(&notification).Update("is_read", true)
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read", "id": notificationID})
}

// MarkAllNotificationsRead clears the caller's unread badge
func MarkAllNotificationsRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	result := config.DB.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked read", "updated": result.RowsAffected})
}
