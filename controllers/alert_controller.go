package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itz-Mayank/Environmental-Sustainability/metrics"
	"github.com/itz-Mayank/Environmental-Sustainability/services"
)

type AlertController struct {
	Alerts *services.AlertService
}

func NewAlertController(alerts *services.AlertService) *AlertController {
	return &AlertController{Alerts: alerts}
}

type CreateAlertInput struct {
	Type      string   `json:"type" binding:"required"`
	Threshold *float64 `json:"threshold" binding:"required"`
}

// POST /api/alerts
func (ac *AlertController) CreateAlert(c *gin.Context) {
	uid := c.GetUint("userID")

	var input CreateAlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		metrics.AlertValidationErrors.WithLabelValues("malformed_body").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.ValidateAlertInput(input.Type, input.Threshold); err != nil {
		metrics.AlertValidationErrors.WithLabelValues("invalid_fields").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := ac.Alerts.Create(uid, input.Type, *input.Threshold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.AlertsCreatedTotal.WithLabelValues(alert.Type).Inc()
	c.JSON(http.StatusCreated, alert)
}

// GET /api/alerts
func (ac *AlertController) ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	alerts, err := ac.Alerts.ListByUser(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}
