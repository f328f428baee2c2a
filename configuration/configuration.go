package configuration

import (
	"log"
	"os"

	"github.com/ChandraSKN/meghanaPridally/models"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// holds connection to db
var DB *gorm.DB

// initializing db connection
func ConfigDB() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	dsn := os.Getenv("DB")
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to the database")
	}

	if err := Migrate(DB); err != nil {
		panic("Failed to migrate database: " + err.Error())
	}

	SeedDoctors(DB)
}

// Migrate runs auto-migration for every model
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.DailyCheckIn{},
		&models.HealthGoal{},
		&models.HealthMetric{},
		&models.Doctor{},
		&models.DoctorAppointment{},
		&models.Prescription{},
	)
}

// SeedDoctors fills the read-only doctor directory when it is empty.
// The API never creates doctors, so an empty table would make the
// care-coordination endpoints useless.
func SeedDoctors(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Doctor{}).Count(&count).Error; err != nil {
		log.Println("Error counting doctors:", err)
		return
	}
	if count > 0 {
		return
	}

	doctors := []models.Doctor{
		{Name: "Sarah Mitchell", Email: "s.mitchell@pridally.health", Phone: "020-7946-0321", Speciality: "general_practice", Hospital: "Riverside Medical Centre"},
		{Name: "James Okafor", Email: "j.okafor@pridally.health", Phone: "020-7946-0417", Speciality: "cardiology", Hospital: "St. Helens Hospital", AvailableDays: "Monday,Wednesday,Friday"},
		{Name: "Priya Raman", Email: "p.raman@pridally.health", Phone: "020-7946-0558", Speciality: "psychiatry", Hospital: "Riverside Medical Centre", AvailableDays: "Tuesday,Thursday"},
		{Name: "Elena Vasquez", Email: "e.vasquez@pridally.health", Phone: "020-7946-0672", Speciality: "nutrition", Hospital: "Wellness Park Clinic"},
		{Name: "Tom Barker", Email: "t.barker@pridally.health", Phone: "020-7946-0710", Speciality: "physical_therapy", Hospital: "Wellness Park Clinic", AvailableDays: "Monday,Tuesday,Wednesday,Thursday,Friday,Saturday"},
	}
	if err := db.Create(&doctors).Error; err != nil {
		log.Println("Error seeding doctors:", err)
	}
}
