package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tonicworks/chordbase-api/internal/metrics"
	"github.com/tonicworks/chordbase-api/internal/services"
)

type AnalyzeHandler struct {
	engine  *services.QueryEngine
	metrics *metrics.Client
}

func NewAnalyzeHandler(engine *services.QueryEngine, metricsClient *metrics.Client) *AnalyzeHandler {
	return &AnalyzeHandler{
		engine:  engine,
		metrics: metricsClient,
	}
}

// Analyze returns the full analysis record for one progression.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progression id must be an integer"})
		return
	}

	start := time.Now()
	analysis, err := h.engine.Analyze(id)
	if err != nil {
		var invalidID *services.ErrInvalidID
		if errors.As(err, &invalidID) {
			c.JSON(http.StatusNotFound, gin.H{"error": invalidID.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}
	h.metrics.RecordQuery("analyze", 1, time.Since(start))

	c.JSON(http.StatusOK, analysis)
}
