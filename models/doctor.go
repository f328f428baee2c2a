package models

import (
	"strings"

	"gorm.io/gorm"
)

// Specialty choices
var Specialties = []string{
	"general_practice",
	"cardiology",
	"neurology",
	"orthopedics",
	"dermatology",
	"psychiatry",
	"nutrition",
	"physical_therapy",
}

type Doctor struct {
	gorm.Model
	Name       string `json:"name" gorm:"not null" validate:"required"`
	Email      string `json:"email" gorm:"unique;not null" validate:"required,email"`
	Phone      string `json:"phone"`
	Speciality string `json:"speciality" gorm:"not null"`
	Bio        string `json:"bio"`
	Hospital   string `json:"hospital"`

	// Availability. AvailableDays holds comma-separated weekday names.
	AvailableDays string `json:"available_days" gorm:"default:Monday,Tuesday,Wednesday,Thursday,Friday"`
	StartTime     string `json:"start_time" gorm:"default:09:00"`
	EndTime       string `json:"end_time" gorm:"default:17:00"`

	// Derived from appointment ratings, never set directly by clients
	AverageRating float64 `json:"average_rating"`
}

// AvailableOn reports whether the doctor lists the given weekday name.
// Matching is against parsed day tokens, not raw substring containment,
// so a stored "Tues" never matches "Tuesday" and vice versa.
func (d *Doctor) AvailableOn(day string) bool {
	for _, token := range strings.Split(d.AvailableDays, ",") {
		if strings.EqualFold(strings.TrimSpace(token), day) {
			return true
		}
	}
	return false
}

func ValidSpecialty(speciality string) bool {
	for _, s := range Specialties {
		if s == speciality {
			return true
		}
	}
	return false
}
