package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdulrahman-nisar/UpliftAI/config"
	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/services"
)

// ChatController fronts the AI wellness companion.
type ChatController struct {
	coach *services.CoachService
}

func NewChatController(coach *services.CoachService) *ChatController {
	return &ChatController{coach: coach}
}

// SendMessage returns a single supportive reply to the user's message.
func (cc *ChatController) SendMessage(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondClientError(c, "Missing required fields")
		return
	}

	reply, err := cc.coach.Reply(c.Request.Context(), req.Message, req.Mood)
	if err != nil {
		config.Logger.Errorw("coach reply failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Wellness coach is unavailable right now",
		})
		return
	}

	respondOK(c, gin.H{"reply": reply})
}
