package controllers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/ChandraSKN/meghanaPridally/configuration"
	"github.com/ChandraSKN/meghanaPridally/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// dateOnly truncates an instant to its calendar day
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type checkInResponse struct {
	ID              uint      `json:"id"`
	Mood            string    `json:"mood"`
	EnergyLevel     string    `json:"energy_level"`
	SleepHours      float64   `json:"sleep_hours"`
	ExerciseMinutes int       `json:"exercise_minutes"`
	WaterIntake     int       `json:"water_intake"`
	MealsLogged     int       `json:"meals_logged"`
	Notes           string    `json:"notes"`
	Symptoms        string    `json:"symptoms"`
	CheckInDate     string    `json:"check_in_date"`
	CreatedAt       time.Time `json:"created_at"`
}

func buildCheckInResponse(checkIn models.DailyCheckIn) checkInResponse {
	return checkInResponse{
		ID:              checkIn.ID,
		Mood:            checkIn.Mood,
		EnergyLevel:     checkIn.EnergyLevel,
		SleepHours:      checkIn.SleepHours,
		ExerciseMinutes: checkIn.ExerciseMinutes,
		WaterIntake:     checkIn.WaterIntake,
		MealsLogged:     checkIn.MealsLogged,
		Notes:           checkIn.Notes,
		Symptoms:        checkIn.Symptoms,
		CheckInDate:     checkIn.CheckInDate.Format("2006-01-02"),
		CreatedAt:       checkIn.CreatedAt,
	}
}

func buildCheckInList(checkIns []models.DailyCheckIn) []checkInResponse {
	list := make([]checkInResponse, 0, len(checkIns))
	for _, checkIn := range checkIns {
		list = append(list, buildCheckInResponse(checkIn))
	}
	return list
}

type checkInInput struct {
	Mood            string  `json:"mood" validate:"required"`
	EnergyLevel     string  `json:"energy_level" validate:"required"`
	SleepHours      float64 `json:"sleep_hours" validate:"gte=0,lte=24"`
	ExerciseMinutes int     `json:"exercise_minutes" validate:"gte=0"`
	WaterIntake     int     `json:"water_intake" validate:"gte=0"`
	MealsLogged     int     `json:"meals_logged" validate:"gte=0"`
	Notes           string  `json:"notes"`
	Symptoms        string  `json:"symptoms"`
}

func (input *checkInInput) validateChoices() error {
	if !models.ValidMood(input.Mood) {
		return errors.New("invalid mood value")
	}
	if !models.ValidEnergyLevel(input.EnergyLevel) {
		return errors.New("invalid energy level value")
	}
	return nil
}

// CreateCheckIn records today's check-in; one per user per calendar day
func CreateCheckIn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input checkInInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validateChoices(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today := dateOnly(time.Now())

	// Pre-check for an existing check-in; the composite unique index is
	// the backstop under concurrent requests
	var existing models.DailyCheckIn
	err := configuration.DB.Where("user_id = ? AND check_in_date = ?", userID, today).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Check-in already exists for today"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	checkIn := models.DailyCheckIn{
		UserID:          userID,
		Mood:            input.Mood,
		EnergyLevel:     input.EnergyLevel,
		SleepHours:      input.SleepHours,
		ExerciseMinutes: input.ExerciseMinutes,
		WaterIntake:     input.WaterIntake,
		MealsLogged:     input.MealsLogged,
		Notes:           input.Notes,
		Symptoms:        input.Symptoms,
		CheckInDate:     today,
	}
	if err := configuration.DB.Create(&checkIn).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Check-in already exists for today"})
		return
	}

	c.JSON(http.StatusCreated, buildCheckInResponse(checkIn))
}

// ListCheckIns returns all of the user's check-ins, newest first
func ListCheckIns(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var checkIns []models.DailyCheckIn
	if err := configuration.DB.Where("user_id = ?", userID).
		Order("check_in_date desc").Find(&checkIns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve check-ins"})
		return
	}

	c.JSON(http.StatusOK, buildCheckInList(checkIns))
}

func GetCheckIn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var checkIn models.DailyCheckIn
	if err := configuration.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&checkIn).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Check-in not found"})
		return
	}

	c.JSON(http.StatusOK, buildCheckInResponse(checkIn))
}

// UpdateCheckIn edits the fields of an existing check-in; its date is fixed
func UpdateCheckIn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var checkIn models.DailyCheckIn
	if err := configuration.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&checkIn).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Check-in not found"})
		return
	}

	var input checkInInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validateChoices(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkIn.Mood = input.Mood
	checkIn.EnergyLevel = input.EnergyLevel
	checkIn.SleepHours = input.SleepHours
	checkIn.ExerciseMinutes = input.ExerciseMinutes
	checkIn.WaterIntake = input.WaterIntake
	checkIn.MealsLogged = input.MealsLogged
	checkIn.Notes = input.Notes
	checkIn.Symptoms = input.Symptoms

	if err := configuration.DB.Save(&checkIn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update check-in"})
		return
	}

	c.JSON(http.StatusOK, buildCheckInResponse(checkIn))
}

func DeleteCheckIn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// Hard delete so the day's slot in the composite unique index frees
	// up and the user can check in again
	result := configuration.DB.Unscoped().Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Delete(&models.DailyCheckIn{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete check-in"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Check-in not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Check-in deleted"})
}

// TodayCheckIn returns the check-in for the current calendar day
func TodayCheckIn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var checkIn models.DailyCheckIn
	err := configuration.DB.Where("user_id = ? AND check_in_date = ?", userID, dateOnly(time.Now())).
		First(&checkIn).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No check-in for today"})
		return
	}

	c.JSON(http.StatusOK, buildCheckInResponse(checkIn))
}

func checkInsSince(userID uint, since time.Time) ([]models.DailyCheckIn, error) {
	var checkIns []models.DailyCheckIn
	err := configuration.DB.Where("user_id = ? AND check_in_date >= ?", userID, since).
		Order("check_in_date desc").Find(&checkIns).Error
	return checkIns, err
}

// WeeklyCheckIns returns the rolling 7-day window, boundary day included
func WeeklyCheckIns(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	checkIns, err := checkInsSince(userID, dateOnly(time.Now()).AddDate(0, 0, -7))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve check-ins"})
		return
	}

	c.JSON(http.StatusOK, buildCheckInList(checkIns))
}

// MonthlyCheckIns returns the rolling 30-day window, boundary day included
func MonthlyCheckIns(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	checkIns, err := checkInsSince(userID, dateOnly(time.Now()).AddDate(0, 0, -30))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve check-ins"})
		return
	}

	c.JSON(http.StatusOK, buildCheckInList(checkIns))
}

type checkInStats struct {
	TotalCheckins        int     `json:"total_checkins"`
	AverageMood          string  `json:"average_mood"`
	AverageEnergy        string  `json:"average_energy"`
	AverageSleep         float64 `json:"average_sleep"`
	TotalExerciseMinutes int     `json:"total_exercise_minutes"`
}

// mostFrequent picks the value with the highest count; ties go to the
// value declared first in the choices slice
func mostFrequent(counts map[string]int, choices []string) string {
	best := ""
	bestCount := 0
	for _, choice := range choices {
		if counts[choice] > bestCount {
			best = choice
			bestCount = counts[choice]
		}
	}
	return best
}

// CheckInStats aggregates the past 30 days of check-ins
func CheckInStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	checkIns, err := checkInsSince(userID, dateOnly(time.Now()).AddDate(0, 0, -30))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve check-ins"})
		return
	}
	if len(checkIns) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No check-ins available"})
		return
	}

	moodCounts := make(map[string]int)
	energyCounts := make(map[string]int)
	var sleepTotal float64
	var exerciseTotal int
	for _, checkIn := range checkIns {
		moodCounts[checkIn.Mood]++
		energyCounts[checkIn.EnergyLevel]++
		sleepTotal += checkIn.SleepHours
		exerciseTotal += checkIn.ExerciseMinutes
	}

	averageSleep := sleepTotal / float64(len(checkIns))

	c.JSON(http.StatusOK, checkInStats{
		TotalCheckins:        len(checkIns),
		AverageMood:          mostFrequent(moodCounts, models.MoodLevels),
		AverageEnergy:        mostFrequent(energyCounts, models.EnergyLevels),
		AverageSleep:         math.Round(averageSleep*100) / 100,
		TotalExerciseMinutes: exerciseTotal,
	})
}
