// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/tool-index/db"
	"github.com/danielhkuo/tool-index/models"
	"github.com/danielhkuo/tool-index/testutil"
)

func newSeededHandler(t *testing.T) *LeaderboardHandler {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	testutil.SeedLeaderboard(t, conn)
	return NewLeaderboardHandler(db.NewStore(conn), testutil.GetTestConfig())
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGetProjects(t *testing.T) {
	handler := newSeededHandler(t)

	w := httptest.NewRecorder()
	handler.GetProjects(w, testutil.MakeRequest("GET", "/api/projects", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var projects []models.Project
	testutil.AssertJSON(t, w, &projects)

	if len(projects) != 1 {
		t.Fatalf("Expected 1 indexed project, got %d", len(projects))
	}
	p := projects[0]
	if p.ID != "proj-1" {
		t.Errorf("Expected project 'proj-1', got '%s'", p.ID)
	}
	if len(p.Surveys) != 1 || len(p.Surveys[0].SurveyBatches) != 1 {
		t.Fatalf("Expected one survey with one batch, got %+v", p.Surveys)
	}
	if runs := p.Surveys[0].SurveyBatches[0].Runs; len(runs) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(runs))
	}
}

func TestGetProjects_StoreFailure(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewLeaderboardHandler(db.NewStore(conn), testutil.GetTestConfig())
	conn.Close()

	w := httptest.NewRecorder()
	handler.GetProjects(w, testutil.MakeRequest("GET", "/api/projects", nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Internal server error" {
		t.Errorf("Expected message 'Internal server error', got '%s'", resp.Message)
	}
}

func TestGetLeaderboard(t *testing.T) {
	handler := newSeededHandler(t)

	tests := []struct {
		name            string
		query           string
		expectedStatus  int
		expectedOverall float64
		expectedTop     []string
	}{
		{
			name:            "all providers",
			query:           "",
			expectedStatus:  http.StatusOK,
			expectedOverall: 8,
			expectedTop:     []string{"claude-3-5-sonnet", "gpt-4o"},
		},
		{
			name:            "claude only",
			query:           "?providers=claude",
			expectedStatus:  http.StatusOK,
			expectedOverall: 9,
			expectedTop:     []string{"claude-3-5-sonnet"},
		},
		{
			name:            "repeated params merge",
			query:           "?providers=claude&providers=chatgpt",
			expectedStatus:  http.StatusOK,
			expectedOverall: 8,
			expectedTop:     []string{"claude-3-5-sonnet", "gpt-4o"},
		},
		{
			name:            "no matching runs",
			query:           "?providers=gemini",
			expectedStatus:  http.StatusOK,
			expectedOverall: 0,
			expectedTop:     []string{},
		},
		{
			name:           "unknown provider",
			query:          "?providers=llama",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.GetLeaderboard(w, testutil.MakeRequest("GET", "/api/leaderboard"+tt.query, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var projects []models.TransformedProject
			testutil.AssertJSON(t, w, &projects)
			if len(projects) != 1 {
				t.Fatalf("Expected 1 project, got %d", len(projects))
			}

			scores := projects[0].Scores
			if !almostEqual(scores.Overall, tt.expectedOverall) {
				t.Errorf("Expected overall %v, got %v", tt.expectedOverall, scores.Overall)
			}
			if len(scores.TopModels) != len(tt.expectedTop) {
				t.Fatalf("Expected %d top models, got %+v", len(tt.expectedTop), scores.TopModels)
			}
			for i, name := range tt.expectedTop {
				if scores.TopModels[i].Name != name {
					t.Errorf("Expected top model %d to be '%s', got '%s'", i, name, scores.TopModels[i].Name)
				}
			}
			if len(scores.Categories) != len(models.Categories) {
				t.Errorf("Expected %d categories, got %d", len(models.Categories), len(scores.Categories))
			}
		})
	}
}

func TestGetLeaderboard_CategoryDetail(t *testing.T) {
	handler := newSeededHandler(t)

	w := httptest.NewRecorder()
	handler.GetLeaderboard(w, testutil.MakeRequest("GET", "/api/leaderboard", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var projects []models.TransformedProject
	testutil.AssertJSON(t, w, &projects)
	if len(projects) != 1 {
		t.Fatalf("Expected 1 project, got %d", len(projects))
	}

	compilation := projects[0].Scores.Categories[models.CategoryCodeCompilation]
	if !almostEqual(compilation.Score, 23.0/3.0) {
		t.Errorf("Expected compilation score %v, got %v", 23.0/3.0, compilation.Score)
	}
	if !almostEqual(compilation.CriteriaScores["Validity"], 7) {
		t.Errorf("Expected Validity 7, got %v", compilation.CriteriaScores["Validity"])
	}
	if !almostEqual(compilation.CriteriaScores["Speed"], 9) {
		t.Errorf("Expected Speed 9, got %v", compilation.CriteriaScores["Speed"])
	}
	if len(compilation.Criteria) != 2 || compilation.Criteria[0].Description != "compiles cleanly" {
		t.Errorf("Unexpected criteria definitions: %+v", compilation.Criteria)
	}

	security := projects[0].Scores.Categories[models.CategorySecurity]
	if security.Score != 0 || len(security.ModelScores) != 0 {
		t.Errorf("Expected empty security category, got %+v", security)
	}
}

func TestGetProjectLeaderboard(t *testing.T) {
	handler := newSeededHandler(t)

	tests := []struct {
		name            string
		id              string
		query           string
		expectedStatus  int
		expectedOverall float64
	}{
		{"all providers", "proj-1", "", http.StatusOK, 8},
		{"filtered", "proj-1", "?providers=chatgpt", http.StatusOK, 7},
		{"filter ignored", "proj-1", "?providers=chatgpt&filtered=false", http.StatusOK, 8},
		{"hidden project", "proj-hidden", "", http.StatusNotFound, 0},
		{"unknown project", "nope", "", http.StatusNotFound, 0},
		{"unknown provider", "proj-1", "?providers=mistral", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/api/leaderboard/"+tt.id+tt.query, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.GetProjectLeaderboard(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Error != http.StatusText(tt.expectedStatus) {
					t.Errorf("Expected error '%s', got '%s'", http.StatusText(tt.expectedStatus), resp.Error)
				}
				return
			}

			var project models.TransformedProject
			testutil.AssertJSON(t, w, &project)
			if project.ID != tt.id {
				t.Errorf("Expected project '%s', got '%s'", tt.id, project.ID)
			}
			if project.Category != "DevOps" {
				t.Errorf("Expected category 'DevOps', got '%s'", project.Category)
			}
			if !almostEqual(project.Scores.Overall, tt.expectedOverall) {
				t.Errorf("Expected overall %v, got %v", tt.expectedOverall, project.Scores.Overall)
			}
		})
	}
}

func TestGetProjectLeaderboard_CanceledRequest(t *testing.T) {
	handler := newSeededHandler(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := testutil.MakeRequest("GET", "/api/leaderboard/proj-1", nil).WithContext(ctx)
	req.SetPathValue("id", "proj-1")
	w := httptest.NewRecorder()

	handler.GetProjectLeaderboard(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func TestGetCategories(t *testing.T) {
	handler := newSeededHandler(t)

	w := httptest.NewRecorder()
	handler.GetCategories(w, testutil.MakeRequest("GET", "/api/categories", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var categories []string
	testutil.AssertJSON(t, w, &categories)

	expected := []string{
		"Code Quality Support",
		"Code Compilation",
		"Problem Solving Helpfulness",
		"Security Awareness",
	}
	if len(categories) != len(expected) {
		t.Fatalf("Expected %d categories, got %d", len(expected), len(categories))
	}
	for i := range expected {
		if categories[i] != expected[i] {
			t.Errorf("Expected category %d to be '%s', got '%s'", i, expected[i], categories[i])
		}
	}
}
