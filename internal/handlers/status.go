package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wellnest-dev/wellnest/db"
)

// StatusCheck reports liveness, including a ping against the store.
func StatusCheck(ctx *gin.Context) {
	sqlDB, err := db.DB.DB()

	if err == nil {
		err = sqlDB.Ping()
	}

	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "degraded",
			"message": "Database unreachable",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Wellnest is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
