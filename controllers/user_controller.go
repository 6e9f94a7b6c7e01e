package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/services"
	"github.com/abdulrahman-nisar/UpliftAI/utils"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// CreateProfile creates a profile after external auth signup.
func (uc *UserController) CreateProfile(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondClientError(c, "Missing required fields")
		return
	}

	if !utils.ValidateEmail(req.Email) {
		respondClientError(c, "Invalid email format")
		return
	}

	user, err := uc.users.CreateProfile(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, gin.H{
		"message": "User profile created successfully",
		"user":    user,
	})
}

func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.users.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"user": user})
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondClientError(c, "Invalid request body")
		return
	}

	if err := uc.users.Update(c.Request.Context(), c.Param("user_id"), fields); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "User profile updated successfully"})
}

func (uc *UserController) DeleteProfile(c *gin.Context) {
	if err := uc.users.Delete(c.Request.Context(), c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "User profile deleted successfully"})
}

func (uc *UserController) GetGoals(c *gin.Context) {
	goals, err := uc.users.GetGoals(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"goals": goals})
}

func (uc *UserController) UpdateGoals(c *gin.Context) {
	var req models.UpdateGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondClientError(c, "Invalid request body")
		return
	}

	if err := uc.users.UpdateGoals(c.Request.Context(), c.Param("user_id"), req.Goals); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "User goals updated successfully"})
}
