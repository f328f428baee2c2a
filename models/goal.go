package models

import (
	"time"

	"gorm.io/gorm"
)

// Goal type choices
var GoalTypes = []string{"weight", "fitness", "sleep", "stress", "nutrition", "hydration"}

type HealthGoal struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"not null"`

	GoalType    string `json:"goal_type" gorm:"not null"`
	Description string `json:"description"`
	TargetValue string `json:"target_value"` // e.g. "10000 steps/day"

	// Progress is a percentage, always within [0,100]
	Progress int  `json:"progress" gorm:"default:0"`
	IsActive bool `json:"is_active" gorm:"default:true"`

	StartDate  time.Time  `json:"start_date"`
	TargetDate *time.Time `json:"target_date"`
}

func ValidGoalType(goalType string) bool {
	for _, g := range GoalTypes {
		if g == goalType {
			return true
		}
	}
	return false
}
