package routes

import (
	"github.com/ChandraSKN/meghanaPridally/authentication"
	"github.com/ChandraSKN/meghanaPridally/controllers"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Gzip compression
	r.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/token", controllers.Token)
		auth.POST("/token/refresh", controllers.RefreshToken)
	}

	// Authorized routes, all scoped to the authenticated user
	api := r.Group("/api")
	api.Use(authentication.UserAuthMiddleware())
	{
		// User routes
		api.GET("/users/me", controllers.CurrentUser)
		api.PUT("/users/me", controllers.UpdateCurrentUser)
		api.POST("/users/change_password", controllers.ChangePassword)
		api.POST("/users/complete_onboarding", controllers.CompleteOnboarding)

		// Profile routes
		api.GET("/profiles/me", controllers.MyProfile)
		api.PUT("/profiles/me", controllers.UpdateMyProfile)

		// Check-in routes
		api.GET("/checkins", controllers.ListCheckIns)
		api.POST("/checkins", controllers.CreateCheckIn)
		api.GET("/checkins/today", controllers.TodayCheckIn)
		api.GET("/checkins/weekly", controllers.WeeklyCheckIns)
		api.GET("/checkins/monthly", controllers.MonthlyCheckIns)
		api.GET("/checkins/stats", controllers.CheckInStats)
		api.GET("/checkins/:id", controllers.GetCheckIn)
		api.PUT("/checkins/:id", controllers.UpdateCheckIn)
		api.DELETE("/checkins/:id", controllers.DeleteCheckIn)

		// Goal routes
		api.GET("/goals", controllers.ListGoals)
		api.POST("/goals", controllers.CreateGoal)
		api.GET("/goals/active", controllers.ActiveGoals)
		api.GET("/goals/:id", controllers.GetGoal)
		api.PUT("/goals/:id", controllers.UpdateGoal)
		api.DELETE("/goals/:id", controllers.DeleteGoal)
		api.POST("/goals/:id/update_progress", controllers.UpdateGoalProgress)

		// Metric routes
		api.GET("/metrics", controllers.ListMetrics)
		api.POST("/metrics", controllers.CreateMetric)
		api.GET("/metrics/by_type", controllers.MetricsByType)
		api.GET("/metrics/:id", controllers.GetMetric)
		api.DELETE("/metrics/:id", controllers.DeleteMetric)

		// Doctor directory (read-only)
		api.GET("/doctors", controllers.ListDoctors)
		api.GET("/doctors/by_specialty", controllers.DoctorsBySpecialty)
		api.GET("/doctors/available", controllers.AvailableDoctors)
		api.GET("/doctors/:id", controllers.GetDoctor)

		// Appointment routes
		api.GET("/appointments", controllers.ListAppointments)
		api.POST("/appointments", controllers.CreateAppointment)
		api.GET("/appointments/upcoming", controllers.UpcomingAppointments)
		api.GET("/appointments/past", controllers.PastAppointments)
		api.GET("/appointments/stats", controllers.AppointmentStats)
		api.GET("/appointments/:id", controllers.GetAppointment)
		api.PUT("/appointments/:id", controllers.UpdateAppointment)
		api.DELETE("/appointments/:id", controllers.DeleteAppointment)
		api.POST("/appointments/:id/cancel", controllers.CancelAppointment)
		api.POST("/appointments/:id/reschedule", controllers.RescheduleAppointment)
		api.POST("/appointments/:id/complete", controllers.CompleteAppointment)
		api.POST("/appointments/:id/rate", controllers.RateAppointment)

		// Prescription sub-resources
		api.GET("/appointments/:id/prescriptions", controllers.ListPrescriptions)
		api.POST("/appointments/:id/prescriptions", controllers.AddPrescription)
		api.GET("/appointments/:id/prescriptions/pdf", controllers.PrescriptionsPDF)
		api.POST("/appointments/:id/prescriptions/:pid/toggle_completion", controllers.TogglePrescriptionCompletion)
	}

	return r
}
