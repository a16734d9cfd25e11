package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// Root answers the API banner.
func Root(c *gin.Context) {
	respondSuccess(c, gin.H{"message": "Messenger API"})
}

// Health pings the store. Unlike the API endpoints this is an infrastructure
// surface and answers 503 when the store is unreachable.
func Health(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "store unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	}
}
