package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/abdulrahman-nisar/UpliftAI/config"
	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/services"
	"github.com/abdulrahman-nisar/UpliftAI/utils"
)

// AuthController issues API tokens. Identity itself comes from the
// external auth provider; this only signs a JWT for an existing profile
// so mobile and test clients can call the private routes.
type AuthController struct {
	users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

func (ac *AuthController) Token(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondClientError(c, "Missing required fields")
		return
	}

	if _, err := ac.users.Get(c.Request.Context(), req.UserID); err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateToken(req.UserID)
	if err != nil {
		config.Logger.Errorw("token generation failed", "error", err, "userID", req.UserID)
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"token": token})
}
