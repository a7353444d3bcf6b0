package handlers

import (
	"net/http"
	"time"

	"github.com/elsonbaty123/wagbty2/config"
	"github.com/elsonbaty123/wagbty2/middleware"
	"github.com/elsonbaty123/wagbty2/models"

	"github.com/gin-gonic/gin"
)

// Chef stories expire after 24 hours
const statusLifetime = 24 * time.Hour

type PostStatusRequest struct {
	Type     string `json:"type" binding:"omitempty,oneof=image video"`
	ImageURL string `json:"image_url" binding:"required"`
	Caption  string `json:"caption"`
}

// PostStatus publishes a chef's story; replacing any earlier one
func PostStatus(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var req PostStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// One active story per chef
	config.DB.Where("chef_id = ?", chefID).Delete(&models.StatusObject{})

	status := models.StatusObject{
		ChefID:   chefID,
		Type:     "image",
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
	}
	if req.Type != "" {
		status.Type = req.Type
	}
	if err := config.DB.Create(&status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post status"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": status})
}

// ListActiveStatuses returns stories posted within the last 24 hours
func ListActiveStatuses(c *gin.Context) {
	cutoff := time.Now().Add(-statusLifetime)
	var statuses []models.StatusObject
	config.DB.Where("created_at >= ?", cutoff).Order("created_at desc").Find(&statuses)
	c.JSON(http.StatusOK, gin.H{"count": len(statuses), "statuses": statuses})
}

type ReactToStatusRequest struct {
	Emoji   string `json:"emoji"`
	Message string `json:"message"`
}

// ReactToStatus records an emoji or message reaction on a story
func ReactToStatus(c *gin.Context) {
	userID := middleware.GetUserID(c)
	statusID := c.Param("id")

	var req ReactToStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Emoji == "" && req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "emoji or message required"})
		return
	}

	var status models.StatusObject
	if err := config.DB.First(&status, "id = ?", statusID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Status not found"})
		return
	}

	var user models.User
	config.DB.First(&user, "id = ?", userID)

	reaction := models.StatusReaction{
		StatusID:     status.ID,
		UserID:       user.ID,
		UserName:     user.Name,
		UserImageURL: user.ImageURL,
		Emoji:        req.Emoji,
		Message:      req.Message,
	}
	if err := config.DB.Create(&reaction).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record reaction"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reaction": reaction})
}

// MarkStatusViewed records that the caller saw a story (idempotent)
func MarkStatusViewed(c *gin.Context) {
	userID := middleware.GetUserID(c)
	statusID := c.Param("id")

	var status models.StatusObject
	if err := config.DB.First(&status, "id = ?", statusID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Status not found"})
		return
	}

	var existing models.ViewedStatus
	if result := config.DB.Where("status_id = ? AND user_id = ?", statusID, userID).
		First(&existing); result.Error == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Already viewed"})
		return
	}

	view := models.ViewedStatus{StatusID: statusID, UserID: userID}
	config.DB.Create(&view)
	c.JSON(http.StatusCreated, gin.H{"message": "View recorded"})
}
