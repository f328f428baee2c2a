package models

import (
	"time"

	"gorm.io/gorm"
)

// Appointment status values
const (
	StatusScheduled   = "scheduled"
	StatusCompleted   = "completed"
	StatusCancelled   = "cancelled"
	StatusNoShow      = "no_show"
	StatusRescheduled = "rescheduled"
)

// Appointment type choices
var AppointmentTypes = []string{"in_person", "video_call", "phone_call"}

type DoctorAppointment struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"not null"`

	// Doctor is optional; deleting a doctor detaches the appointment
	// instead of deleting it
	DoctorID *uint   `json:"doctor_id"`
	Doctor   *Doctor `json:"-" gorm:"constraint:OnDelete:SET NULL"`

	AppointmentType string    `json:"appointment_type" gorm:"default:in_person"`
	AppointmentDate time.Time `json:"appointment_date" gorm:"not null"`
	AppointmentTime string    `json:"appointment_time" gorm:"not null"` // HH:MM
	DurationMinutes int       `json:"duration_minutes" gorm:"default:30"`

	// Status changes only through the explicit cancel/reschedule/complete
	// actions, never through a generic field update
	Status string `json:"status" gorm:"default:scheduled"`

	ReasonForVisit string `json:"reason_for_visit"`
	DoctorNotes    string `json:"doctor_notes"`
	PatientNotes   string `json:"patient_notes"`

	VideoCallLink string `json:"video_call_link"`
	Location      string `json:"location"`

	Rating *int   `json:"rating"`
	Review string `json:"review"`

	Prescriptions []Prescription `json:"prescriptions" gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE"`
}

// StartsAt combines the stored date and HH:MM time into a single instant.
func (a *DoctorAppointment) StartsAt() time.Time {
	parsed, err := time.Parse("15:04", a.AppointmentTime)
	if err != nil {
		return a.AppointmentDate
	}
	d := a.AppointmentDate
	return time.Date(d.Year(), d.Month(), d.Day(), parsed.Hour(), parsed.Minute(), 0, 0, d.Location())
}

func (a *DoctorAppointment) IsUpcoming(now time.Time) bool {
	return a.StartsAt().After(now)
}

func (a *DoctorAppointment) IsPast(now time.Time) bool {
	return a.StartsAt().Before(now)
}

func ValidAppointmentType(appointmentType string) bool {
	for _, t := range AppointmentTypes {
		if t == appointmentType {
			return true
		}
	}
	return false
}
