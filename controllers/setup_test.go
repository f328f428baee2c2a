package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ChandraSKN/meghanaPridally/authentication"
	"github.com/ChandraSKN/meghanaPridally/configuration"
	"github.com/ChandraSKN/meghanaPridally/models"
	"github.com/ChandraSKN/meghanaPridally/routes"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// memoryTokenStore replaces redis in tests
type memoryTokenStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{values: make(map[string]string)}
}

func (s *memoryTokenStore) Set(key string, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memoryTokenStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return "", errors.New("key not found")
	}
	return value, nil
}

func (s *memoryTokenStore) Del(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// setupRouter builds a router over a fresh in-memory database
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database handle: %v", err)
	}
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := configuration.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	configuration.DB = db
	authentication.Store = newMemoryTokenStore()

	return routes.SetupRouter()
}

func doRequest(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var payload *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func urlf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// createUser signs up an account and returns its id with a usable
// access token
func createUser(t *testing.T, r *gin.Engine, email string) (uint, string) {
	t.Helper()

	w := doRequest(r, http.MethodPost, "/api/auth/signup", gin.H{
		"email":            email,
		"first_name":       "Test",
		"last_name":        "User",
		"password":         "longpass1",
		"password_confirm": "longpass1",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("signup failed with status %d: %s", w.Code, w.Body.String())
	}

	var user models.User
	if err := configuration.DB.Where("email = ?", email).First(&user).Error; err != nil {
		t.Fatalf("failed to load created user: %v", err)
	}

	w = doRequest(r, http.MethodPost, "/api/auth/token", gin.H{
		"email":    email,
		"password": "longpass1",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("token request failed with status %d: %s", w.Code, w.Body.String())
	}

	var tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	decodeBody(t, w, &tokens)
	return user.ID, tokens.Access
}
