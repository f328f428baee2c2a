package controllers

import (
	"net/http"

	"github.com/ChandraSKN/meghanaPridally/configuration"
	"github.com/ChandraSKN/meghanaPridally/models"
	"github.com/gin-gonic/gin"
)

// ensureProfile makes sure a profile row exists for the user before any
// profile read or write. Signup normally creates it, but accounts that
// predate that behaviour get one on first access.
func ensureProfile(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := configuration.DB.Where(models.UserProfile{UserID: userID}).
		Attrs(models.UserProfile{NotificationEnabled: true, ThemePreference: models.ThemeAuto}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// MyProfile returns the authenticated user's profile, creating it if absent
func MyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := ensureProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

type updateProfileInput struct {
	Height              *float64 `json:"height"`
	Weight              *float64 `json:"weight"`
	BloodType           *string  `json:"blood_type"`
	NotificationEnabled *bool    `json:"notification_enabled"`
	ThemePreference     *string  `json:"theme_preference"`
	Allergies           *string  `json:"allergies"`
	Medications         *string  `json:"medications"`
	MedicalConditions   *string  `json:"medical_conditions"`
}

// UpdateMyProfile applies a partial update; only supplied fields change
func UpdateMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input updateProfileInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := ensureProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	if input.Height != nil {
		profile.Height = input.Height
	}
	if input.Weight != nil {
		profile.Weight = input.Weight
	}
	if input.BloodType != nil {
		if *input.BloodType != "" && !models.ValidBloodType(*input.BloodType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blood type"})
			return
		}
		profile.BloodType = *input.BloodType
	}
	if input.NotificationEnabled != nil {
		profile.NotificationEnabled = *input.NotificationEnabled
	}
	if input.ThemePreference != nil {
		if !models.ValidThemePreference(*input.ThemePreference) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid theme preference"})
			return
		}
		profile.ThemePreference = *input.ThemePreference
	}
	if input.Allergies != nil {
		profile.Allergies = *input.Allergies
	}
	if input.Medications != nil {
		profile.Medications = *input.Medications
	}
	if input.MedicalConditions != nil {
		profile.MedicalConditions = *input.MedicalConditions
	}

	if err := configuration.DB.Save(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
