package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tonicworks/chordbase-api/internal/models"
)

type HealthHandler struct {
	collection *models.Collection
}

func NewHealthHandler(collection *models.Collection) *HealthHandler {
	return &HealthHandler{collection: collection}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"dataset": gin.H{
			"loaded":             h.collection.Size() > 0,
			"total_progressions": h.collection.Size(),
		},
	})
}
