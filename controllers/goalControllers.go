package controllers

import (
	"net/http"
	"time"

	"github.com/ChandraSKN/meghanaPridally/configuration"
	"github.com/ChandraSKN/meghanaPridally/models"
	"github.com/gin-gonic/gin"
)

type goalResponse struct {
	ID          uint      `json:"id"`
	GoalType    string    `json:"goal_type"`
	Description string    `json:"description"`
	TargetValue string    `json:"target_value"`
	Progress    int       `json:"progress"`
	IsActive    bool      `json:"is_active"`
	StartDate   string    `json:"start_date"`
	TargetDate  *string   `json:"target_date"`
	CreatedAt   time.Time `json:"created_at"`
}

func buildGoalResponse(goal models.HealthGoal) goalResponse {
	resp := goalResponse{
		ID:          goal.ID,
		GoalType:    goal.GoalType,
		Description: goal.Description,
		TargetValue: goal.TargetValue,
		Progress:    goal.Progress,
		IsActive:    goal.IsActive,
		StartDate:   goal.StartDate.Format("2006-01-02"),
		CreatedAt:   goal.CreatedAt,
	}
	if goal.TargetDate != nil {
		formatted := goal.TargetDate.Format("2006-01-02")
		resp.TargetDate = &formatted
	}
	return resp
}

func buildGoalList(goals []models.HealthGoal) []goalResponse {
	list := make([]goalResponse, 0, len(goals))
	for _, goal := range goals {
		list = append(list, buildGoalResponse(goal))
	}
	return list
}

type goalInput struct {
	GoalType    string `json:"goal_type" validate:"required"`
	Description string `json:"description"`
	TargetValue string `json:"target_value"`
	Progress    *int   `json:"progress"`
	IsActive    *bool  `json:"is_active"`
	TargetDate  string `json:"target_date"`
}

// CreateGoal adds a health goal for the authenticated user
func CreateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input goalInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidGoalType(input.GoalType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal type"})
		return
	}

	goal := models.HealthGoal{
		UserID:      userID,
		GoalType:    input.GoalType,
		Description: input.Description,
		TargetValue: input.TargetValue,
		IsActive:    true,
		StartDate:   dateOnly(time.Now()),
	}
	if input.Progress != nil {
		if *input.Progress < 0 || *input.Progress > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Progress must be between 0 and 100"})
			return
		}
		goal.Progress = *input.Progress
	}
	if input.IsActive != nil {
		goal.IsActive = *input.IsActive
	}
	if input.TargetDate != "" {
		target, err := time.Parse("2006-01-02", input.TargetDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target_date format, expected YYYY-MM-DD"})
			return
		}
		goal.TargetDate = &target
	}

	if err := configuration.DB.Create(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	c.JSON(http.StatusCreated, buildGoalResponse(goal))
}

func ListGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var goals []models.HealthGoal
	if err := configuration.DB.Where("user_id = ?", userID).
		Order("created_at desc").Find(&goals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goals"})
		return
	}

	c.JSON(http.StatusOK, buildGoalList(goals))
}

func GetGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var goal models.HealthGoal
	if err := configuration.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	c.JSON(http.StatusOK, buildGoalResponse(goal))
}

// UpdateGoal applies a partial update to a goal's descriptive fields
func UpdateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var goal models.HealthGoal
	if err := configuration.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	var input struct {
		GoalType    *string `json:"goal_type"`
		Description *string `json:"description"`
		TargetValue *string `json:"target_value"`
		IsActive    *bool   `json:"is_active"`
		TargetDate  *string `json:"target_date"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.GoalType != nil {
		if !models.ValidGoalType(*input.GoalType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal type"})
			return
		}
		goal.GoalType = *input.GoalType
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.TargetValue != nil {
		goal.TargetValue = *input.TargetValue
	}
	if input.IsActive != nil {
		goal.IsActive = *input.IsActive
	}
	if input.TargetDate != nil {
		target, err := time.Parse("2006-01-02", *input.TargetDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target_date format, expected YYYY-MM-DD"})
			return
		}
		goal.TargetDate = &target
	}

	if err := configuration.DB.Save(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
		return
	}

	c.JSON(http.StatusOK, buildGoalResponse(goal))
}

func DeleteGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result := configuration.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Delete(&models.HealthGoal{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}

// ActiveGoals returns only goals with is_active set
func ActiveGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var goals []models.HealthGoal
	if err := configuration.DB.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at desc").Find(&goals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goals"})
		return
	}

	c.JSON(http.StatusOK, buildGoalList(goals))
}

// UpdateGoalProgress overwrites a goal's progress; values outside
// [0,100] are rejected
func UpdateGoalProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var goal models.HealthGoal
	if err := configuration.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	var input struct {
		Progress *int `json:"progress" binding:"required"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *input.Progress < 0 || *input.Progress > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Progress must be between 0 and 100"})
		return
	}

	goal.Progress = *input.Progress
	if err := configuration.DB.Save(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update progress"})
		return
	}

	c.JSON(http.StatusOK, buildGoalResponse(goal))
}
