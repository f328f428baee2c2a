package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func createGoal(t *testing.T, r *gin.Engine, token string, payload gin.H) uint {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/goals", payload, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("goal create failed with %d: %s", w.Code, w.Body.String())
	}
	var goal struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &goal)
	return goal.ID
}

func TestUpdateProgressRejectsOutOfRange(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, r, "a@x.com")
	goalID := createGoal(t, r, token, gin.H{"goal_type": "fitness", "description": "run more"})

	w := doRequest(r, http.MethodPost, urlf("/api/goals/%d/update_progress", goalID), gin.H{"progress": 150}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for progress 150, got %d", w.Code)
	}

	w = doRequest(r, http.MethodPost, urlf("/api/goals/%d/update_progress", goalID), gin.H{"progress": -5}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for progress -5, got %d", w.Code)
	}

	// The goal's progress is untouched by rejected updates
	w = doRequest(r, http.MethodGet, urlf("/api/goals/%d", goalID), nil, token)
	var goal struct {
		Progress int `json:"progress"`
	}
	decodeBody(t, w, &goal)
	if goal.Progress != 0 {
		t.Errorf("expected progress 0 after rejected updates, got %d", goal.Progress)
	}
}

func TestUpdateProgressOverwrites(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, r, "a@x.com")
	goalID := createGoal(t, r, token, gin.H{"goal_type": "sleep", "description": "sleep 8 hours", "progress": 40})

	// Direct overwrite, not an increment
	w := doRequest(r, http.MethodPost, urlf("/api/goals/%d/update_progress", goalID), gin.H{"progress": 30}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var goal struct {
		Progress int `json:"progress"`
	}
	decodeBody(t, w, &goal)
	if goal.Progress != 30 {
		t.Errorf("expected progress 30, got %d", goal.Progress)
	}
}

func TestActiveGoalsFilter(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, r, "a@x.com")

	createGoal(t, r, token, gin.H{"goal_type": "fitness", "description": "active goal"})
	inactive := createGoal(t, r, token, gin.H{"goal_type": "hydration", "description": "inactive goal"})

	w := doRequest(r, http.MethodPut, urlf("/api/goals/%d", inactive), gin.H{"is_active": false}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 deactivating goal, got %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/api/goals/active", nil, token)
	var goals []struct {
		Description string `json:"description"`
		IsActive    bool   `json:"is_active"`
	}
	decodeBody(t, w, &goals)
	if len(goals) != 1 {
		t.Fatalf("expected 1 active goal, got %d", len(goals))
	}
	if goals[0].Description != "active goal" {
		t.Errorf("expected only the active goal, got %q", goals[0].Description)
	}
}

func TestCreateGoalValidatesType(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, r, "a@x.com")

	w := doRequest(r, http.MethodPost, "/api/goals", gin.H{"goal_type": "world_domination"}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown goal type, got %d", w.Code)
	}
}
