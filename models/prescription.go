package models

import (
	"gorm.io/gorm"
)

type Prescription struct {
	gorm.Model
	AppointmentID uint `json:"appointment_id" gorm:"not null"`

	MedicationName string `json:"medication_name" gorm:"not null" validate:"required"`
	Dosage         string `json:"dosage" validate:"required"`    // e.g. "500mg"
	Frequency      string `json:"frequency" validate:"required"` // e.g. "Twice daily"
	Duration       string `json:"duration"`                      // e.g. "10 days"

	Instructions string `json:"instructions"`
	SideEffects  string `json:"side_effects"`

	IsCompleted bool `json:"is_completed"`
}
