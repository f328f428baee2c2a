package models

import (
	"time"

	"gorm.io/gorm"
)

// Mood levels in declaration order. The stats endpoint breaks ties between
// equally frequent values by this order, so keep it stable.
var MoodLevels = []string{"very_bad", "bad", "neutral", "good", "very_good"}

// Energy levels in declaration order, same tie-break rule as MoodLevels.
var EnergyLevels = []string{"very_low", "low", "medium", "high", "very_high"}

type DailyCheckIn struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"not null;uniqueIndex:idx_user_checkin_date"`

	Mood        string `json:"mood" gorm:"not null"`
	EnergyLevel string `json:"energy_level" gorm:"not null"`

	SleepHours      float64 `json:"sleep_hours"`
	ExerciseMinutes int     `json:"exercise_minutes"`
	WaterIntake     int     `json:"water_intake"` // ml
	MealsLogged     int     `json:"meals_logged"`

	Notes    string `json:"notes"`
	Symptoms string `json:"symptoms"`

	// One check-in per user per calendar day, enforced by the composite index
	CheckInDate time.Time `json:"check_in_date" gorm:"not null;uniqueIndex:idx_user_checkin_date"`
}

func ValidMood(mood string) bool {
	for _, m := range MoodLevels {
		if m == mood {
			return true
		}
	}
	return false
}

func ValidEnergyLevel(level string) bool {
	for _, e := range EnergyLevels {
		if e == level {
			return true
		}
	}
	return false
}
