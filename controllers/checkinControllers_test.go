package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/ChandraSKN/meghanaPridally/configuration"
	"github.com/ChandraSKN/meghanaPridally/models"
	"github.com/gin-gonic/gin"
)

func checkInPayload() gin.H {
	return gin.H{
		"mood":             "good",
		"energy_level":     "high",
		"sleep_hours":      7.5,
		"exercise_minutes": 30,
		"water_intake":     2000,
	}
}

func seedCheckIn(t *testing.T, userID uint, daysAgo int, mood, energy string, sleep float64, exercise int) {
	t.Helper()
	now := time.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -daysAgo)
	checkIn := models.DailyCheckIn{
		UserID:          userID,
		Mood:            mood,
		EnergyLevel:     energy,
		SleepHours:      sleep,
		ExerciseMinutes: exercise,
		CheckInDate:     date,
	}
	if err := configuration.DB.Create(&checkIn).Error; err != nil {
		t.Fatalf("failed to seed check-in: %v", err)
	}
}

func TestCreateCheckInDuplicateDayConflicts(t *testing.T) {
	r := setupRouter(t)
	userID, token := createUser(t, r, "a@x.com")

	w := doRequest(r, http.MethodPost, "/api/checkins", checkInPayload(), token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first check-in, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodPost, "/api/checkins", checkInPayload(), token)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on second check-in same day, got %d", w.Code)
	}

	var count int64
	configuration.DB.Model(&models.DailyCheckIn{}).Where("user_id = ?", userID).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one check-in row, got %d", count)
	}
}

func TestCreateCheckInValidatesInput(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, r, "a@x.com")

	payload := checkInPayload()
	payload["mood"] = "ecstatic"
	w := doRequest(r, http.MethodPost, "/api/checkins", payload, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown mood, got %d", w.Code)
	}

	payload = checkInPayload()
	payload["sleep_hours"] = 25.0
	w = doRequest(r, http.MethodPost, "/api/checkins", payload, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for sleep_hours > 24, got %d", w.Code)
	}

	payload = checkInPayload()
	payload["exercise_minutes"] = -10
	w = doRequest(r, http.MethodPost, "/api/checkins", payload, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative exercise, got %d", w.Code)
	}
}

func TestTodayCheckIn(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, r, "a@x.com")

	w := doRequest(r, http.MethodGet, "/api/checkins/today", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before any check-in, got %d", w.Code)
	}

	doRequest(r, http.MethodPost, "/api/checkins", checkInPayload(), token)

	w = doRequest(r, http.MethodGet, "/api/checkins/today", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 after check-in, got %d", w.Code)
	}

	var checkIn struct {
		Mood        string `json:"mood"`
		CheckInDate string `json:"check_in_date"`
	}
	decodeBody(t, w, &checkIn)
	if checkIn.Mood != "good" {
		t.Errorf("expected mood good, got %q", checkIn.Mood)
	}
	if checkIn.CheckInDate != time.Now().Format("2006-01-02") {
		t.Errorf("expected today's date, got %q", checkIn.CheckInDate)
	}
}

func TestWeeklyWindowIncludesBoundaryDay(t *testing.T) {
	r := setupRouter(t)
	userID, token := createUser(t, r, "a@x.com")

	seedCheckIn(t, userID, 7, "good", "high", 7, 30)  // boundary day
	seedCheckIn(t, userID, 8, "bad", "low", 6, 0)     // outside window
	seedCheckIn(t, userID, 1, "neutral", "medium", 8, 20)

	w := doRequest(r, http.MethodGet, "/api/checkins/weekly", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var checkIns []struct {
		Mood string `json:"mood"`
	}
	decodeBody(t, w, &checkIns)
	if len(checkIns) != 2 {
		t.Fatalf("expected 2 check-ins in weekly window, got %d", len(checkIns))
	}
	// Newest first
	if checkIns[0].Mood != "neutral" || checkIns[1].Mood != "good" {
		t.Errorf("expected newest-first ordering, got %+v", checkIns)
	}
}

func TestCheckInStatsEmptyWindow(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, r, "a@x.com")

	w := doRequest(r, http.MethodGet, "/api/checkins/stats", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with no check-ins, got %d", w.Code)
	}
}

func TestCheckInStats(t *testing.T) {
	r := setupRouter(t)
	userID, token := createUser(t, r, "a@x.com")

	seedCheckIn(t, userID, 1, "good", "high", 7.0, 30)
	seedCheckIn(t, userID, 2, "good", "low", 8.0, 45)
	seedCheckIn(t, userID, 3, "bad", "low", 6.5, 0)
	// Outside the 30-day window, must not count
	seedCheckIn(t, userID, 31, "very_bad", "very_low", 2, 0)

	w := doRequest(r, http.MethodGet, "/api/checkins/stats", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stats struct {
		TotalCheckins        int     `json:"total_checkins"`
		AverageMood          string  `json:"average_mood"`
		AverageEnergy        string  `json:"average_energy"`
		AverageSleep         float64 `json:"average_sleep"`
		TotalExerciseMinutes int     `json:"total_exercise_minutes"`
	}
	decodeBody(t, w, &stats)

	if stats.TotalCheckins != 3 {
		t.Errorf("expected 3 check-ins, got %d", stats.TotalCheckins)
	}
	if stats.AverageMood != "good" {
		t.Errorf("expected modal mood good, got %q", stats.AverageMood)
	}
	if stats.AverageEnergy != "low" {
		t.Errorf("expected modal energy low, got %q", stats.AverageEnergy)
	}
	// (7.0 + 8.0 + 6.5) / 3 = 7.1666... rounds to 7.17
	if stats.AverageSleep != 7.17 {
		t.Errorf("expected average sleep 7.17, got %v", stats.AverageSleep)
	}
	if stats.TotalExerciseMinutes != 75 {
		t.Errorf("expected 75 exercise minutes, got %d", stats.TotalExerciseMinutes)
	}
}

func TestCheckInStatsTieBreaksByDeclarationOrder(t *testing.T) {
	r := setupRouter(t)
	userID, token := createUser(t, r, "a@x.com")

	// One of each: every mood count ties at 1, every energy count ties at 1
	seedCheckIn(t, userID, 1, "good", "very_high", 7, 0)
	seedCheckIn(t, userID, 2, "bad", "medium", 7, 0)

	w := doRequest(r, http.MethodGet, "/api/checkins/stats", nil, token)
	var stats struct {
		AverageMood   string `json:"average_mood"`
		AverageEnergy string `json:"average_energy"`
	}
	decodeBody(t, w, &stats)

	// "bad" precedes "good" in the mood declaration order, "medium"
	// precedes "very_high" in the energy order
	if stats.AverageMood != "bad" {
		t.Errorf("expected tie to resolve to bad, got %q", stats.AverageMood)
	}
	if stats.AverageEnergy != "medium" {
		t.Errorf("expected tie to resolve to medium, got %q", stats.AverageEnergy)
	}
}

func TestDeleteCheckInFreesTheDay(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, r, "a@x.com")

	w := doRequest(r, http.MethodPost, "/api/checkins", checkInPayload(), token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first check-in, got %d: %s", w.Code, w.Body.String())
	}
	var checkIn struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &checkIn)

	w = doRequest(r, http.MethodDelete, urlf("/api/checkins/%d", checkIn.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting check-in, got %d", w.Code)
	}

	// Deleting the day's check-in makes room for a new one
	w = doRequest(r, http.MethodPost, "/api/checkins", checkInPayload(), token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 re-creating after delete, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCheckInsScopedToOwner(t *testing.T) {
	r := setupRouter(t)
	userA, _ := createUser(t, r, "a@x.com")
	_, tokenB := createUser(t, r, "b@x.com")

	seedCheckIn(t, userA, 1, "good", "high", 7, 30)

	w := doRequest(r, http.MethodGet, "/api/checkins", nil, tokenB)
	var checkIns []any
	decodeBody(t, w, &checkIns)
	if len(checkIns) != 0 {
		t.Errorf("expected user B to see no check-ins, got %d", len(checkIns))
	}
}
