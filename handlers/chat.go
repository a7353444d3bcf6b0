package handlers

import (
	"net/http"

	"github.com/elsonbaty123/wagbty2/config"
	"github.com/elsonbaty123/wagbty2/middleware"
	"github.com/elsonbaty123/wagbty2/models"

	"github.com/gin-gonic/gin"
)

// GetChatMessages returns the most recent community chat messages
func GetChatMessages(c *gin.Context) {
	var messages []models.ChatMessage
	config.DB.Order("created_at desc").Limit(100).Find(&messages)
	c.JSON(http.StatusOK, gin.H{"count": len(messages), "messages": messages})
}

type PostChatMessageRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

// PostChatMessage appends a message to the community chat
func PostChatMessage(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req PostChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	message := models.ChatMessage{
		UserID:       user.ID,
		UserName:     user.Name,
		UserImageURL: user.ImageURL,
		Text:         req.Text,
	}
	if err := config.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": message})
}
