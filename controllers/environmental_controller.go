package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itz-Mayank/Environmental-Sustainability/metrics"
	"github.com/itz-Mayank/Environmental-Sustainability/services"
)

type EnvironmentalController struct {
	Snapshots *services.SnapshotService
}

func NewEnvironmentalController(snapshots *services.SnapshotService) *EnvironmentalController {
	return &EnvironmentalController{Snapshots: snapshots}
}

// GET /api/environmental/:category
func (ec *EnvironmentalController) GetSnapshot(c *gin.Context) {
	category := c.Param("category")

	snapshot, err := ec.Snapshots.Get(category)
	if err != nil {
		if errors.Is(err, services.ErrUnknownCategory) {
			metrics.SnapshotRequestsTotal.WithLabelValues(category, "not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown category"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.SnapshotRequestsTotal.WithLabelValues(category, "ok").Inc()
	c.JSON(http.StatusOK, snapshot)
}
