package Controllers

import (
	"net/http"

	"TherapyTrack/Models"

	"github.com/gin-gonic/gin"
)

func FetchStats(c *gin.Context) {
	stats, err := Models.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
