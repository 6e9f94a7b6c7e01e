package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/services"
	"github.com/abdulrahman-nisar/UpliftAI/utils"
)

type MoodController struct {
	moods *services.MoodService
}

func NewMoodController(moods *services.MoodService) *MoodController {
	return &MoodController{moods: moods}
}

func (mc *MoodController) Create(c *gin.Context) {
	var req models.CreateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondClientError(c, "Missing required fields")
		return
	}

	if req.Date != "" && !utils.ValidateDate(req.Date) {
		respondClientError(c, "date must be in YYYY-MM-DD format")
		return
	}

	entry, err := mc.moods.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, gin.H{
		"message":    "Mood entry created successfully",
		"entry_id":   entry.ID,
		"mood_entry": entry,
	})
}

func (mc *MoodController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := mc.moods.ListForUser(c.Request.Context(), c.Param("user_id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": len(entries), "moods": entries})
}

func (mc *MoodController) Get(c *gin.Context) {
	entry, err := mc.moods.Get(c.Request.Context(), c.Param("user_id"), c.Param("entry_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"mood_entry": entry})
}

func (mc *MoodController) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondClientError(c, "Invalid request body")
		return
	}

	err := mc.moods.Update(c.Request.Context(), c.Param("user_id"), c.Param("entry_id"), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Mood entry updated successfully"})
}

func (mc *MoodController) Delete(c *gin.Context) {
	err := mc.moods.Delete(c.Request.Context(), c.Param("user_id"), c.Param("entry_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Mood entry deleted successfully"})
}

// Statistics reports the trailing-window mood summary, default 7 days.
func (mc *MoodController) Statistics(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days <= 0 {
		respondClientError(c, "days must be a positive integer")
		return
	}

	stats, err := mc.moods.Statistics(c.Request.Context(), c.Param("user_id"), days)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"statistics": stats})
}

// ByDateRange returns entries between start_date and end_date inclusive.
func (mc *MoodController) ByDateRange(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")
	if start == "" || end == "" {
		respondClientError(c, "start_date and end_date are required")
		return
	}
	if !utils.ValidateDate(start) || !utils.ValidateDate(end) {
		respondClientError(c, "dates must be in YYYY-MM-DD format")
		return
	}

	entries, err := mc.moods.ByDateRange(c.Request.Context(), c.Param("user_id"), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": len(entries), "moods": entries})
}
