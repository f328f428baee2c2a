package controllers

import (
	"net/http"
	"time"

	"github.com/ChandraSKN/meghanaPridally/configuration"
	"github.com/ChandraSKN/meghanaPridally/models"
	"github.com/gin-gonic/gin"
)

type metricInput struct {
	MetricType string `json:"metric_type" validate:"required"`
	Value      string `json:"value" validate:"required"`
	Unit       string `json:"unit"`
	Notes      string `json:"notes"`
}

// CreateMetric records an ad-hoc health reading
func CreateMetric(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input metricInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidMetricType(input.MetricType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid metric type"})
		return
	}

	metric := models.HealthMetric{
		UserID:     userID,
		MetricType: input.MetricType,
		Value:      input.Value,
		Unit:       input.Unit,
		Notes:      input.Notes,
		RecordedAt: time.Now(),
	}
	if err := configuration.DB.Create(&metric).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record metric"})
		return
	}

	c.JSON(http.StatusCreated, metric)
}

func ListMetrics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var metrics []models.HealthMetric
	if err := configuration.DB.Where("user_id = ?", userID).
		Order("recorded_at desc").Find(&metrics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve metrics"})
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func GetMetric(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var metric models.HealthMetric
	if err := configuration.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&metric).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Metric not found"})
		return
	}

	c.JSON(http.StatusOK, metric)
}

func DeleteMetric(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result := configuration.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Delete(&models.HealthMetric{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete metric"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Metric not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Metric deleted"})
}

// MetricsByType returns the newest 50 readings of one metric type
func MetricsByType(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	metricType := c.Query("type")
	if metricType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type parameter required"})
		return
	}

	var metrics []models.HealthMetric
	if err := configuration.DB.Where("user_id = ? AND metric_type = ?", userID, metricType).
		Order("recorded_at desc").Limit(50).Find(&metrics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve metrics"})
		return
	}

	c.JSON(http.StatusOK, metrics)
}
