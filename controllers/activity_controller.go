package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/services"
	"github.com/abdulrahman-nisar/UpliftAI/utils"
)

type ActivityController struct {
	activities *services.ActivityService
}

func NewActivityController(activities *services.ActivityService) *ActivityController {
	return &ActivityController{activities: activities}
}

func (ac *ActivityController) Create(c *gin.Context) {
	var req models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondClientError(c, "Missing required fields")
		return
	}

	activity, err := ac.activities.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, gin.H{
		"message":  "Activity created successfully",
		"activity": activity,
	})
}

func (ac *ActivityController) GetAll(c *gin.Context) {
	activities, err := ac.activities.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": len(activities), "activities": activities})
}

func (ac *ActivityController) Get(c *gin.Context) {
	activity, err := ac.activities.Get(c.Request.Context(), c.Param("activity_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"activity": activity})
}

func (ac *ActivityController) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondClientError(c, "Invalid request body")
		return
	}

	if err := ac.activities.Update(c.Request.Context(), c.Param("activity_id"), fields); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Activity updated successfully"})
}

func (ac *ActivityController) Delete(c *gin.Context) {
	if err := ac.activities.Delete(c.Request.Context(), c.Param("activity_id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Activity deleted successfully"})
}

func (ac *ActivityController) ByType(c *gin.Context) {
	activities, err := ac.activities.ByType(c.Request.Context(), c.Param("activity_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": len(activities), "activities": activities})
}

// Recommendations filters the catalog by the mood's mapped activity
// types. goals is accepted for API compatibility and not consulted.
func (ac *ActivityController) Recommendations(c *gin.Context) {
	mood := c.Query("mood")
	goals := c.QueryArray("goals")

	activities, err := ac.activities.Recommended(c.Request.Context(), mood, goals)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": len(activities), "activities": activities})
}

// Log records an activity a user performed.
func (ac *ActivityController) Log(c *gin.Context) {
	var req models.LogActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondClientError(c, "Missing required fields")
		return
	}

	if !utils.ValidateDate(req.Date) {
		respondClientError(c, "date must be in YYYY-MM-DD format")
		return
	}

	entry, err := ac.activities.Log(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, gin.H{
		"message": "Activity logged successfully",
		"id":      entry.ID,
		"data":    entry,
	})
}

// UserLogs lists a user's logged activities, most recent first.
func (ac *ActivityController) UserLogs(c *gin.Context) {
	logs, err := ac.activities.LogsForUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": len(logs), "activities": logs})
}
