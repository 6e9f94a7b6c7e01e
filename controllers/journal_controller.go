package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/services"
	"github.com/abdulrahman-nisar/UpliftAI/utils"
)

type JournalController struct {
	journals *services.JournalService
}

func NewJournalController(journals *services.JournalService) *JournalController {
	return &JournalController{journals: journals}
}

func (jc *JournalController) Create(c *gin.Context) {
	var req models.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondClientError(c, "Missing required fields")
		return
	}

	if req.Date != "" && !utils.ValidateDate(req.Date) {
		respondClientError(c, "date must be in YYYY-MM-DD format")
		return
	}

	entry, err := jc.journals.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, gin.H{
		"message":       "Journal entry created successfully",
		"journal_id":    entry.ID,
		"journal_entry": entry,
	})
}

func (jc *JournalController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := jc.journals.ListForUser(c.Request.Context(), c.Param("user_id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": len(entries), "journals": entries})
}

func (jc *JournalController) Get(c *gin.Context) {
	entry, err := jc.journals.Get(c.Request.Context(), c.Param("user_id"), c.Param("journal_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"journal_entry": entry})
}

func (jc *JournalController) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondClientError(c, "Invalid request body")
		return
	}

	err := jc.journals.Update(c.Request.Context(), c.Param("user_id"), c.Param("journal_id"), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Journal entry updated successfully"})
}

func (jc *JournalController) Delete(c *gin.Context) {
	err := jc.journals.Delete(c.Request.Context(), c.Param("user_id"), c.Param("journal_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Journal entry deleted successfully"})
}

// Search matches the keyword against entry content and prompt.
func (jc *JournalController) Search(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		respondClientError(c, "keyword parameter is required")
		return
	}

	entries, err := jc.journals.Search(c.Request.Context(), c.Param("user_id"), keyword)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": len(entries), "journals": entries})
}

// ByDateRange returns entries between start_date and end_date inclusive.
func (jc *JournalController) ByDateRange(c *gin.Context) {
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

	entries, err := jc.journals.ByDateRange(c.Request.Context(), c.Param("user_id"), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": len(entries), "journals": entries})
}
