package models

import (
	"time"

	"gorm.io/gorm"
)

// Metric type choices
var MetricTypes = []string{"blood_pressure", "heart_rate", "blood_sugar", "temperature", "weight"}

type HealthMetric struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"not null"`

	MetricType string `json:"metric_type" gorm:"not null"`
	// Value is free text so composite readings like "120/80" fit
	Value string `json:"value" gorm:"not null"`
	Unit  string `json:"unit"` // mmHg, bpm, mg/dL, °C, kg
	Notes string `json:"notes"`

	RecordedAt time.Time `json:"recorded_at"`
}

func ValidMetricType(metricType string) bool {
	for _, m := range MetricTypes {
		if m == metricType {
			return true
		}
	}
	return false
}
