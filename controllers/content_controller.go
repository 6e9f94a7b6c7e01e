package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/abdulrahman-nisar/UpliftAI/models"
	"github.com/abdulrahman-nisar/UpliftAI/services"
)

type ContentController struct {
	content *services.ContentService
}

func NewContentController(content *services.ContentService) *ContentController {
	return &ContentController{content: content}
}

func (cc *ContentController) Create(c *gin.Context) {
	var req models.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondClientError(c, "Missing required fields")
		return
	}

	content, err := cc.content.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, gin.H{
		"message":    "Content created successfully",
		"content_id": content.ID,
		"content":    content,
	})
}

func (cc *ContentController) GetAll(c *gin.Context) {
	items, err := cc.content.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": len(items), "content": items})
}

func (cc *ContentController) Get(c *gin.Context) {
	item, err := cc.content.Get(c.Request.Context(), c.Param("content_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"content": item})
}

func (cc *ContentController) ByCategory(c *gin.Context) {
	items, err := cc.content.ByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": len(items), "content": items})
}

func (cc *ContentController) ByType(c *gin.Context) {
	items, err := cc.content.ByType(c.Request.Context(), c.Param("content_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": len(items), "content": items})
}

// ByTags matches content sharing any tag with the query.
func (cc *ContentController) ByTags(c *gin.Context) {
	tags := c.QueryArray("tags")
	if len(tags) == 0 {
		respondClientError(c, "tags parameter is required")
		return
	}

	items, err := cc.content.ByTags(c.Request.Context(), tags)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": len(items), "content": items})
}

// Retrieve returns up to 5 content items from the categories mapped to
// the mood. goals is accepted for API compatibility and not consulted.
func (cc *ContentController) Retrieve(c *gin.Context) {
	mood := c.Query("mood")
	goals := c.QueryArray("goals")

	items, err := cc.content.Retrieve(c.Request.Context(), mood, goals)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"count": len(items), "content": items})
}

// Prompt suggests a journal prompt for the mood.
func (cc *ContentController) Prompt(c *gin.Context) {
	mood := c.Query("mood")
	goals := c.QueryArray("goals")

	prompt := cc.content.Prompt(mood, goals)
	respondOK(c, gin.H{"prompt": prompt, "mood": mood})
}

// Quote returns a random motivational quote, optionally by category.
func (cc *ContentController) Quote(c *gin.Context) {
	quote, err := cc.content.Quote(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"quote": quote})
}

// Tips returns up to 3 wellness tips.
func (cc *ContentController) Tips(c *gin.Context) {
	tips, err := cc.content.Tips(c.Request.Context(), c.Query("mood"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"tips": tips})
}
