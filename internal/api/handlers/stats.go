package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tonicworks/chordbase-api/internal/metrics"
	"github.com/tonicworks/chordbase-api/internal/services"
)

type StatsHandler struct {
	engine  *services.QueryEngine
	metrics *metrics.Client
}

func NewStatsHandler(engine *services.QueryEngine, metricsClient *metrics.Client) *StatsHandler {
	return &StatsHandler{
		engine:  engine,
		metrics: metricsClient,
	}
}

// Stats summarizes the loaded collection.
func (h *StatsHandler) Stats(c *gin.Context) {
	start := time.Now()
	stats, err := h.engine.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.metrics.RecordQuery("stats", stats.TotalProgressions, time.Since(start))

	c.JSON(http.StatusOK, stats)
}
