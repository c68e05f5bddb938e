package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tonicworks/chordbase-api/internal/metrics"
	"github.com/tonicworks/chordbase-api/internal/models"
	"github.com/tonicworks/chordbase-api/internal/services"
)

type GenerateHandler struct {
	engine   *services.QueryEngine
	analyzer *services.Analyzer
	metrics  *metrics.Client
}

func NewGenerateHandler(engine *services.QueryEngine, analyzer *services.Analyzer, metricsClient *metrics.Client) *GenerateHandler {
	return &GenerateHandler{
		engine:   engine,
		analyzer: analyzer,
		metrics:  metricsClient,
	}
}

type GenerateRequest struct {
	// TemplateID selects the progression whose length guides the pick.
	// When omitted the pick is uniform over the whole collection.
	TemplateID *int `json:"template_id"`
}

type GenerateResponse struct {
	TemplateID  *int     `json:"template_id,omitempty"`
	Progression [][]int  `json:"progression"`
	Chords      []string `json:"chords"`
	ChordCount  int      `json:"chord_count"`
}

// Generate samples a progression from the collection, optionally biased
// toward the length of a template progression.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	start := time.Now()

	var generated models.Progression
	if req.TemplateID != nil {
		template, err := h.engine.Progression(*req.TemplateID)
		if err != nil {
			var invalidID *services.ErrInvalidID
			if errors.As(err, &invalidID) {
				h.metrics.RecordGenerationDuration(time.Since(start), false)
				c.JSON(http.StatusNotFound, gin.H{"error": invalidID.Error()})
				return
			}
			h.metrics.RecordGenerationDuration(time.Since(start), false)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "generation failed"})
			return
		}
		generated = h.engine.GenerateSimilar(template)
	} else {
		generated = h.engine.GenerateRandom()
	}

	h.metrics.RecordGenerationDuration(time.Since(start), true)

	c.JSON(http.StatusOK, GenerateResponse{
		TemplateID:  req.TemplateID,
		Progression: generated.Raw(),
		Chords:      h.analyzer.Labels(generated),
		ChordCount:  generated.Len(),
	})
}
