package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tonicworks/chordbase-api/internal/metrics"
	"github.com/tonicworks/chordbase-api/internal/models"
	"github.com/tonicworks/chordbase-api/internal/services"
)

const (
	defaultPage         = 1
	defaultItemsPerPage = 10
	maxItemsPerPage     = 100
)

type BrowseHandler struct {
	engine  *services.QueryEngine
	metrics *metrics.Client
}

func NewBrowseHandler(engine *services.QueryEngine, metricsClient *metrics.Client) *BrowseHandler {
	return &BrowseHandler{
		engine:  engine,
		metrics: metricsClient,
	}
}

// Browse pages through the collection with optional search and min-length
// filters. Query params: page, items_per_page, search, min_length.
func (h *BrowseHandler) Browse(c *gin.Context) {
	page, err := queryInt(c, "page", defaultPage)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
		return
	}

	itemsPerPage, err := queryInt(c, "items_per_page", defaultItemsPerPage)
	if err != nil || itemsPerPage < 1 || itemsPerPage > maxItemsPerPage {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "items_per_page must be between 1 and " + strconv.Itoa(maxItemsPerPage),
		})
		return
	}

	minLength, err := queryInt(c, "min_length", 0)
	if err != nil || minLength < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min_length must be a non-negative integer"})
		return
	}

	start := time.Now()
	result := h.engine.Browse(models.BrowseParams{
		Page:         page,
		ItemsPerPage: itemsPerPage,
		SearchQuery:  c.Query("search"),
		MinLength:    minLength,
	})
	h.metrics.RecordQuery("browse", len(result.Progressions), time.Since(start))

	c.JSON(http.StatusOK, result)
}

// queryInt parses an optional integer query parameter.
func queryInt(c *gin.Context, name string, defaultValue int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}
