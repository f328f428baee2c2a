package controllers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ChandraSKN/meghanaPridally/configuration"
	"github.com/ChandraSKN/meghanaPridally/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type appointmentResponse struct {
	ID               uint                  `json:"id"`
	DoctorID         *uint                 `json:"doctor_id"`
	DoctorName       string                `json:"doctor_name"`
	DoctorSpeciality string                `json:"doctor_speciality"`
	AppointmentType  string                `json:"appointment_type"`
	AppointmentDate  string                `json:"appointment_date"`
	AppointmentTime  string                `json:"appointment_time"`
	DurationMinutes  int                   `json:"duration_minutes"`
	Status           string                `json:"status"`
	ReasonForVisit   string                `json:"reason_for_visit"`
	DoctorNotes      string                `json:"doctor_notes"`
	PatientNotes     string                `json:"patient_notes"`
	VideoCallLink    string                `json:"video_call_link"`
	Location         string                `json:"location"`
	Rating           *int                  `json:"rating"`
	Review           string                `json:"review"`
	IsUpcoming       bool                  `json:"is_upcoming"`
	IsPast           bool                  `json:"is_past"`
	Prescriptions    []models.Prescription `json:"prescriptions"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

func buildAppointmentResponse(appointment models.DoctorAppointment) appointmentResponse {
	now := time.Now()
	resp := appointmentResponse{
		ID:              appointment.ID,
		DoctorID:        appointment.DoctorID,
		AppointmentType: appointment.AppointmentType,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: appointment.AppointmentTime,
		DurationMinutes: appointment.DurationMinutes,
		Status:          appointment.Status,
		ReasonForVisit:  appointment.ReasonForVisit,
		DoctorNotes:     appointment.DoctorNotes,
		PatientNotes:    appointment.PatientNotes,
		VideoCallLink:   appointment.VideoCallLink,
		Location:        appointment.Location,
		Rating:          appointment.Rating,
		Review:          appointment.Review,
		IsUpcoming:      appointment.IsUpcoming(now),
		IsPast:          appointment.IsPast(now),
		Prescriptions:   appointment.Prescriptions,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
	if resp.Prescriptions == nil {
		resp.Prescriptions = []models.Prescription{}
	}
	if appointment.Doctor != nil {
		resp.DoctorName = appointment.Doctor.Name
		resp.DoctorSpeciality = appointment.Doctor.Speciality
	}
	return resp
}

func buildAppointmentList(appointments []models.DoctorAppointment) []appointmentResponse {
	list := make([]appointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		list = append(list, buildAppointmentResponse(appointment))
	}
	return list
}

// findUserAppointment loads an appointment by path id, scoped to the
// authenticated user, with doctor and prescriptions attached
func findUserAppointment(c *gin.Context, userID uint) (*models.DoctorAppointment, bool) {
	var appointment models.DoctorAppointment
	err := configuration.DB.Preload("Doctor").Preload("Prescriptions").
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&appointment).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return nil, false
	}
	return &appointment, true
}

type appointmentInput struct {
	DoctorID        *uint  `json:"doctor_id"`
	AppointmentType string `json:"appointment_type"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
	DurationMinutes int    `json:"duration_minutes"`
	ReasonForVisit  string `json:"reason_for_visit" validate:"required"`
	PatientNotes    string `json:"patient_notes"`
	VideoCallLink   string `json:"video_call_link"`
	Location        string `json:"location"`
}

// CreateAppointment schedules a new appointment for the authenticated user
func CreateAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input appointmentInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", input.AppointmentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment_date format, expected YYYY-MM-DD"})
		return
	}
	if _, err := time.Parse("15:04", input.AppointmentTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment_time format, expected HH:MM"})
		return
	}

	appointmentType := input.AppointmentType
	if appointmentType == "" {
		appointmentType = "in_person"
	} else if !models.ValidAppointmentType(appointmentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment type"})
		return
	}

	if input.DoctorID != nil {
		var doctor models.Doctor
		if err := configuration.DB.First(&doctor, *input.DoctorID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Doctor does not exist"})
			return
		}
	}

	duration := input.DurationMinutes
	if duration <= 0 {
		duration = 30
	}

	appointment := models.DoctorAppointment{
		UserID:          userID,
		DoctorID:        input.DoctorID,
		AppointmentType: appointmentType,
		AppointmentDate: date,
		AppointmentTime: input.AppointmentTime,
		DurationMinutes: duration,
		Status:          models.StatusScheduled,
		ReasonForVisit:  input.ReasonForVisit,
		PatientNotes:    input.PatientNotes,
		VideoCallLink:   input.VideoCallLink,
		Location:        input.Location,
	}
	if err := configuration.DB.Create(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}

	if appointment.DoctorID != nil {
		configuration.DB.Preload("Doctor").First(&appointment, appointment.ID)
	}

	c.JSON(http.StatusCreated, buildAppointmentResponse(appointment))
}

// ListAppointments returns all of the user's appointments, newest first
func ListAppointments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var appointments []models.DoctorAppointment
	if err := configuration.DB.Preload("Doctor").Preload("Prescriptions").
		Where("user_id = ?", userID).
		Order("appointment_date desc, appointment_time desc").
		Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}

	c.JSON(http.StatusOK, buildAppointmentList(appointments))
}

func GetAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	appointment, ok := findUserAppointment(c, userID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, buildAppointmentResponse(*appointment))
}

// UpdateAppointment edits descriptive fields. Status never changes here;
// that only happens through the explicit cancel/reschedule/complete actions.
func UpdateAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	appointment, ok := findUserAppointment(c, userID)
	if !ok {
		return
	}

	var input struct {
		AppointmentType *string `json:"appointment_type"`
		DurationMinutes *int    `json:"duration_minutes"`
		ReasonForVisit  *string `json:"reason_for_visit"`
		PatientNotes    *string `json:"patient_notes"`
		VideoCallLink   *string `json:"video_call_link"`
		Location        *string `json:"location"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.AppointmentType != nil {
		if !models.ValidAppointmentType(*input.AppointmentType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment type"})
			return
		}
		appointment.AppointmentType = *input.AppointmentType
	}
	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Duration must be positive"})
			return
		}
		appointment.DurationMinutes = *input.DurationMinutes
	}
	if input.ReasonForVisit != nil {
		appointment.ReasonForVisit = *input.ReasonForVisit
	}
	if input.PatientNotes != nil {
		appointment.PatientNotes = *input.PatientNotes
	}
	if input.VideoCallLink != nil {
		appointment.VideoCallLink = *input.VideoCallLink
	}
	if input.Location != nil {
		appointment.Location = *input.Location
	}

	if err := configuration.DB.Save(appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		return
	}

	c.JSON(http.StatusOK, buildAppointmentResponse(*appointment))
}

// DeleteAppointment removes the appointment and its prescriptions
func DeleteAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	appointment, ok := findUserAppointment(c, userID)
	if !ok {
		return
	}

	err := configuration.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("appointment_id = ?", appointment.ID).
			Delete(&models.Prescription{}).Error; err != nil {
			return err
		}
		return tx.Delete(appointment).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}

// UpcomingAppointments lists appointments from today onward that are
// still scheduled or rescheduled, soonest first
func UpcomingAppointments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var appointments []models.DoctorAppointment
	err := configuration.DB.Preload("Doctor").Preload("Prescriptions").
		Where("user_id = ? AND appointment_date >= ? AND status IN ?",
			userID, dateOnly(time.Now()), []string{models.StatusScheduled, models.StatusRescheduled}).
		Order("appointment_date asc, appointment_time asc").
		Find(&appointments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}

	c.JSON(http.StatusOK, buildAppointmentList(appointments))
}

// PastAppointments lists appointments before today, most recent first
func PastAppointments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var appointments []models.DoctorAppointment
	err := configuration.DB.Preload("Doctor").Preload("Prescriptions").
		Where("user_id = ? AND appointment_date < ?", userID, dateOnly(time.Now())).
		Order("appointment_date desc, appointment_time desc").
		Find(&appointments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}

	c.JSON(http.StatusOK, buildAppointmentList(appointments))
}

// CancelAppointment sets the status to cancelled regardless of the
// current state
func CancelAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	appointment, ok := findUserAppointment(c, userID)
	if !ok {
		return
	}

	appointment.Status = models.StatusCancelled
	if err := configuration.DB.Save(appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
		return
	}

	c.JSON(http.StatusOK, buildAppointmentResponse(*appointment))
}

// RescheduleAppointment overwrites date and time from the request,
// falling back to the stored values when a field is absent
func RescheduleAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	appointment, ok := findUserAppointment(c, userID)
	if !ok {
		return
	}

	var input struct {
		AppointmentDate string `json:"appointment_date"`
		AppointmentTime string `json:"appointment_time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.AppointmentDate != "" {
		date, err := time.Parse("2006-01-02", input.AppointmentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment_date format, expected YYYY-MM-DD"})
			return
		}
		appointment.AppointmentDate = date
	}
	if input.AppointmentTime != "" {
		if _, err := time.Parse("15:04", input.AppointmentTime); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment_time format, expected HH:MM"})
			return
		}
		appointment.AppointmentTime = input.AppointmentTime
	}

	appointment.Status = models.StatusRescheduled
	if err := configuration.DB.Save(appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reschedule appointment"})
		return
	}

	c.JSON(http.StatusOK, buildAppointmentResponse(*appointment))
}

// CompleteAppointment marks the visit as done; doctor notes may be
// recorded at the same time
func CompleteAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	appointment, ok := findUserAppointment(c, userID)
	if !ok {
		return
	}

	// Notes are optional, so an empty request body is fine
	var input struct {
		DoctorNotes string `json:"doctor_notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment.Status = models.StatusCompleted
	if input.DoctorNotes != "" {
		appointment.DoctorNotes = input.DoctorNotes
	}
	if err := configuration.DB.Save(appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete appointment"})
		return
	}

	c.JSON(http.StatusOK, buildAppointmentResponse(*appointment))
}

// recomputeDoctorRating recalculates the doctor's average rating from
// every rated appointment, inside the caller's transaction
func recomputeDoctorRating(tx *gorm.DB, doctorID uint) error {
	var ratings []int
	if err := tx.Model(&models.DoctorAppointment{}).
		Where("doctor_id = ? AND rating IS NOT NULL", doctorID).
		Pluck("rating", &ratings).Error; err != nil {
		return err
	}

	var average float64
	if len(ratings) > 0 {
		total := 0
		for _, rating := range ratings {
			total += rating
		}
		average = float64(total) / float64(len(ratings))
	}

	return tx.Model(&models.Doctor{}).Where("id = ?", doctorID).
		Update("average_rating", average).Error
}

// RateAppointment stores a 1-5 rating with an optional review, then
// refreshes the linked doctor's aggregate rating
func RateAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	appointment, ok := findUserAppointment(c, userID)
	if !ok {
		return
	}

	var input struct {
		Rating *int   `json:"rating" binding:"required"`
		Review string `json:"review"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *input.Rating < 1 || *input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	appointment.Rating = input.Rating
	appointment.Review = input.Review

	// The rating write and the aggregate recompute commit together
	err := configuration.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(appointment).Error; err != nil {
			return err
		}
		if appointment.DoctorID == nil {
			return nil
		}
		return recomputeDoctorRating(tx, *appointment.DoctorID)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rate appointment"})
		return
	}

	c.JSON(http.StatusOK, buildAppointmentResponse(*appointment))
}

type appointmentStats struct {
	TotalAppointments     int64 `json:"total_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
	UpcomingAppointments  int64 `json:"upcoming_appointments"`
	CancelledAppointments int64 `json:"cancelled_appointments"`
}

// AppointmentStats counts the user's appointments by lifecycle bucket
func AppointmentStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	base := func() *gorm.DB {
		return configuration.DB.Model(&models.DoctorAppointment{}).Where("user_id = ?", userID)
	}

	var stats appointmentStats
	if err := base().Count(&stats.TotalAppointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	base().Where("status = ?", models.StatusCompleted).Count(&stats.CompletedAppointments)
	base().Where("appointment_date >= ? AND status IN ?",
		dateOnly(time.Now()), []string{models.StatusScheduled, models.StatusRescheduled}).
		Count(&stats.UpcomingAppointments)
	base().Where("status = ?", models.StatusCancelled).Count(&stats.CancelledAppointments)

	c.JSON(http.StatusOK, stats)
}
