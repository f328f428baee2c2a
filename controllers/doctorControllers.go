package controllers

import (
	"net/http"
	"time"

	"github.com/ChandraSKN/meghanaPridally/configuration"
	"github.com/ChandraSKN/meghanaPridally/models"
	"github.com/gin-gonic/gin"
)

// ListDoctors returns the full doctor directory
func ListDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := configuration.DB.Order("name asc").Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctors"})
		return
	}

	c.JSON(http.StatusOK, doctors)
}

func GetDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := configuration.DB.First(&doctor, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	c.JSON(http.StatusOK, doctor)
}

// DoctorsBySpecialty filters the directory by medical specialty
func DoctorsBySpecialty(c *gin.Context) {
	specialty := c.Query("specialty")
	if specialty == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "specialty parameter required"})
		return
	}

	var doctors []models.Doctor
	if err := configuration.DB.Where("speciality = ?", specialty).
		Order("name asc").Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctors"})
		return
	}

	c.JSON(http.StatusOK, doctors)
}

// AvailableDoctors returns doctors whose availability lists the current
// weekday
func AvailableDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := configuration.DB.Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctors"})
		return
	}

	today := time.Now().Weekday().String()
	available := make([]models.Doctor, 0)
	for _, doctor := range doctors {
		if doctor.AvailableOn(today) {
			available = append(available, doctor)
		}
	}

	c.JSON(http.StatusOK, available)
}
