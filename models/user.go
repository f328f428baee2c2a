package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Health pathway choices for a user
const (
	PathwayFitness      = "fitness"
	PathwayNutrition    = "nutrition"
	PathwayMentalHealth = "mental_health"
	PathwayGeneral      = "general"
)

var HealthPathways = []string{PathwayFitness, PathwayNutrition, PathwayMentalHealth, PathwayGeneral}

type User struct {
	gorm.Model
	Email               string     `json:"email" gorm:"unique;not null" validate:"required,email"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	PhoneNumber         string     `json:"phone_number"`
	Bio                 string     `json:"bio"`
	DateOfBirth         *time.Time `json:"date_of_birth"`
	HealthPathway       string     `json:"health_pathway" gorm:"default:general"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
	Password            string     `json:"-" gorm:"not null"`
}

type UserClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// HashPassword replaces the plain password with its bcrypt hash
func (u *User) HashPassword(raw string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) CheckPassword(raw string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(raw))
}

func ValidHealthPathway(pathway string) bool {
	for _, p := range HealthPathways {
		if p == pathway {
			return true
		}
	}
	return false
}
