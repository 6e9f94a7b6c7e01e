package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdulrahman-nisar/UpliftAI/config"
	"github.com/abdulrahman-nisar/UpliftAI/services"
)

// Every handler responds with the same envelope: {"success": bool} plus
// either the operation's payload or a human-readable "message".

func respondOK(c *gin.Context, payload gin.H) {
	respondWith(c, http.StatusOK, payload)
}

func respondCreated(c *gin.Context, payload gin.H) {
	respondWith(c, http.StatusCreated, payload)
}

func respondWith(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func respondClientError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

// respondError maps the service error taxonomy to a status, one branch
// per kind. Anything outside the taxonomy is an unexpected internal
// fault and is logged before the generic server error goes out.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var storeErr *services.StoreError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": notFoundErr.Error()})
	case errors.As(err, &storeErr):
		config.Logger.Errorw("store operation failed",
			"op", storeErr.Op,
			"error", storeErr.Err,
			"path", c.Request.URL.Path,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
	default:
		config.Logger.Errorw("unclassified error",
			"error", err,
			"path", c.Request.URL.Path,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
	}
}
