package models

import "gorm.io/gorm"

// Blood type choices
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Theme preference choices
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

var ThemePreferences = []string{ThemeLight, ThemeDark, ThemeAuto}

type UserProfile struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"not null;uniqueIndex"`

	// Physical attributes
	Height    *float64 `json:"height"` // cm
	Weight    *float64 `json:"weight"` // kg
	BloodType string   `json:"blood_type"`

	// Preferences
	NotificationEnabled bool   `json:"notification_enabled" gorm:"default:true"`
	ThemePreference     string `json:"theme_preference" gorm:"default:auto"`

	// Medical info
	Allergies         string `json:"allergies"`
	Medications       string `json:"medications"`
	MedicalConditions string `json:"medical_conditions"`
}

func ValidBloodType(bloodType string) bool {
	for _, b := range BloodTypes {
		if b == bloodType {
			return true
		}
	}
	return false
}

func ValidThemePreference(theme string) bool {
	for _, t := range ThemePreferences {
		if t == theme {
			return true
		}
	}
	return false
}
