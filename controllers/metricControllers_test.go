package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/ChandraSKN/meghanaPridally/configuration"
	"github.com/ChandraSKN/meghanaPridally/models"
	"github.com/gin-gonic/gin"
)

func seedMetric(t *testing.T, userID uint, metricType, value string, recordedAt time.Time) uint {
	t.Helper()
	metric := models.HealthMetric{
		UserID:     userID,
		MetricType: metricType,
		Value:      value,
		RecordedAt: recordedAt,
	}
	if err := configuration.DB.Create(&metric).Error; err != nil {
		t.Fatalf("failed to seed metric: %v", err)
	}
	return metric.ID
}

func TestCreateMetricValidatesType(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, r, "a@x.com")

	w := doRequest(r, http.MethodPost, "/api/metrics", gin.H{
		"metric_type": "horoscope",
		"value":       "gemini",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown metric type, got %d", w.Code)
	}

	w = doRequest(r, http.MethodPost, "/api/metrics", gin.H{
		"metric_type": "blood_pressure",
		"value":       "120/80",
		"unit":        "mmHg",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for valid metric, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMetricsByTypeRequiresParam(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, r, "a@x.com")

	w := doRequest(r, http.MethodGet, "/api/metrics/by_type", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without type parameter, got %d", w.Code)
	}
}

func TestMetricsByTypeFiltersAndOrders(t *testing.T) {
	r := setupRouter(t)
	userID, token := createUser(t, r, "a@x.com")

	now := time.Now()
	seedMetric(t, userID, "heart_rate", "70", now.Add(-2*time.Hour))
	seedMetric(t, userID, "heart_rate", "85", now)
	seedMetric(t, userID, "weight", "81.5", now)

	w := doRequest(r, http.MethodGet, "/api/metrics/by_type?type=heart_rate", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var metrics []struct {
		Value string `json:"value"`
	}
	decodeBody(t, w, &metrics)
	if len(metrics) != 2 {
		t.Fatalf("expected 2 heart rate readings, got %d", len(metrics))
	}
	// Newest first
	if metrics[0].Value != "85" || metrics[1].Value != "70" {
		t.Errorf("expected newest-first ordering, got %+v", metrics)
	}
}

func TestMetricsScopedToOwner(t *testing.T) {
	r := setupRouter(t)
	userA, tokenA := createUser(t, r, "a@x.com")
	_, tokenB := createUser(t, r, "b@x.com")

	metricID := seedMetric(t, userA, "temperature", "37.2", time.Now())

	w := doRequest(r, http.MethodGet, urlf("/api/metrics/%d", metricID), nil, tokenB)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign metric, got %d", w.Code)
	}

	w = doRequest(r, http.MethodDelete, urlf("/api/metrics/%d", metricID), nil, tokenB)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 deleting foreign metric, got %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, urlf("/api/metrics/%d", metricID), nil, tokenA)
	if w.Code != http.StatusOK {
		t.Fatalf("expected owner to read metric, got %d", w.Code)
	}
}

func TestDeleteMetric(t *testing.T) {
	r := setupRouter(t)
	userID, token := createUser(t, r, "a@x.com")

	metricID := seedMetric(t, userID, "blood_sugar", "95", time.Now())

	w := doRequest(r, http.MethodDelete, urlf("/api/metrics/%d", metricID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doRequest(r, http.MethodDelete, urlf("/api/metrics/%d", metricID), nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 deleting twice, got %d", w.Code)
	}
}
