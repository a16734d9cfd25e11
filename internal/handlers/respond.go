package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers HTTP 200 and signals logical failure through the
// "status" field. Callers inspect the discriminator, never the transport code.

func respondSuccess(c *gin.Context, payload gin.H) {
	body := gin.H{"status": "success"}
	for key, value := range payload {
		body[key] = value
	}
	c.JSON(http.StatusOK, body)
}

func respondError(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"status": "error", "message": message})
}
