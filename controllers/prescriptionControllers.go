package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/ChandraSKN/meghanaPridally/configuration"
	"github.com/ChandraSKN/meghanaPridally/models"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// ListPrescriptions returns the prescriptions attached to one of the
// user's appointments
func ListPrescriptions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	appointment, ok := findUserAppointment(c, userID)
	if !ok {
		return
	}

	var prescriptions []models.Prescription
	if err := configuration.DB.Where("appointment_id = ?", appointment.ID).
		Order("created_at desc").Find(&prescriptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve prescriptions"})
		return
	}

	c.JSON(http.StatusOK, prescriptions)
}

type prescriptionInput struct {
	MedicationName string `json:"medication_name" validate:"required"`
	Dosage         string `json:"dosage" validate:"required"`
	Frequency      string `json:"frequency" validate:"required"`
	Duration       string `json:"duration"`
	Instructions   string `json:"instructions"`
	SideEffects    string `json:"side_effects"`
}

// AddPrescription attaches a prescription to an appointment
func AddPrescription(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	appointment, ok := findUserAppointment(c, userID)
	if !ok {
		return
	}

	var input prescriptionInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prescription := models.Prescription{
		AppointmentID:  appointment.ID,
		MedicationName: input.MedicationName,
		Dosage:         input.Dosage,
		Frequency:      input.Frequency,
		Duration:       input.Duration,
		Instructions:   input.Instructions,
		SideEffects:    input.SideEffects,
	}
	if err := configuration.DB.Create(&prescription).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add prescription"})
		return
	}

	c.JSON(http.StatusCreated, prescription)
}

// TogglePrescriptionCompletion flips a prescription's completion flag
func TogglePrescriptionCompletion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	appointment, ok := findUserAppointment(c, userID)
	if !ok {
		return
	}

	var prescription models.Prescription
	if err := configuration.DB.Where("id = ? AND appointment_id = ?", c.Param("pid"), appointment.ID).
		First(&prescription).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prescription not found"})
		return
	}

	prescription.IsCompleted = !prescription.IsCompleted
	if err := configuration.DB.Save(&prescription).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update prescription"})
		return
	}

	c.JSON(http.StatusOK, prescription)
}

// PrescriptionsPDF renders the appointment's prescriptions as a
// printable sheet
func PrescriptionsPDF(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	appointment, ok := findUserAppointment(c, userID)
	if !ok {
		return
	}

	var prescriptions []models.Prescription
	if err := configuration.DB.Where("appointment_id = ?", appointment.ID).
		Order("created_at asc").Find(&prescriptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve prescriptions"})
		return
	}

	sheet, err := generatePrescriptionPDF(*appointment, prescriptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=prescriptions_%d.pdf", appointment.ID))
	c.Data(http.StatusOK, "application/pdf", sheet)
}

func generatePrescriptionPDF(appointment models.DoctorAppointment, prescriptions []models.Prescription) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(46, 89, 132)
	pdf.CellFormat(0, 10, "PriDally Health - Prescription Sheet", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Appointment Details", "1", 1, "C", false, 0, "")
	addPDFRow(pdf, "Appointment ID", fmt.Sprintf("%d", appointment.ID), true)
	addPDFRow(pdf, "Date", appointment.AppointmentDate.Format("2006-01-02"), true)
	addPDFRow(pdf, "Time", appointment.AppointmentTime, true)
	if appointment.Doctor != nil {
		addPDFRow(pdf, "Doctor", appointment.Doctor.Name, true)
		addPDFRow(pdf, "Speciality", appointment.Doctor.Speciality, true)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Prescriptions", "1", 1, "C", false, 0, "")
	if len(prescriptions) == 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 10, "No prescriptions recorded for this appointment", "1", 1, "C", false, 0, "")
	}
	for _, prescription := range prescriptions {
		addPDFRow(pdf, "Medication", prescription.MedicationName, true)
		addPDFRow(pdf, "Dosage", prescription.Dosage, false)
		addPDFRow(pdf, "Frequency", prescription.Frequency, false)
		if prescription.Duration != "" {
			addPDFRow(pdf, "Duration", prescription.Duration, false)
		}
		if prescription.Instructions != "" {
			addPDFRow(pdf, "Instructions", prescription.Instructions, false)
		}
	}

	pdf.SetY(pdf.GetY() + 12)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 10, "This is a computer generated prescription sheet", "", 1, "R", false, 0, "")

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// addPDFRow adds a labelled detail line to the PDF
func addPDFRow(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
