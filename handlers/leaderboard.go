// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/tool-index/cliparse"
	"github.com/danielhkuo/tool-index/db"
	"github.com/danielhkuo/tool-index/middleware"
	"github.com/danielhkuo/tool-index/models"
	"github.com/danielhkuo/tool-index/scoring"
)

type LeaderboardHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewLeaderboardHandler(store *db.Store, cfg cliparse.Config) *LeaderboardHandler {
	return &LeaderboardHandler{store: store, cfg: cfg}
}

// GetProjects handles GET /api/projects
// Returns the indexed projects with their raw survey data
func (h *LeaderboardHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.LoadProjects(r.Context())
	if err != nil {
		slog.Error("failed to load projects", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, projects)
}

// GetLeaderboard handles GET /api/leaderboard?providers=claude,gemini
// Returns every indexed project scored against the selected providers
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	providers, err := scoring.ParseProviders(r.URL.Query()["providers"]...)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	projects, err := h.store.LoadProjects(r.Context())
	if err != nil {
		slog.Error("failed to load projects", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, scoring.TransformProjects(projects, providers))
}

// GetProjectLeaderboard handles GET /api/leaderboard/{id}
// filtered=false scores the project against all providers
func (h *LeaderboardHandler) GetProjectLeaderboard(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	query := r.URL.Query()
	providers, err := scoring.ParseProviders(query["providers"]...)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if query.Get("filtered") == "false" {
		providers = nil
	}

	project, err := h.store.LoadProject(r.Context(), id)
	if errors.Is(err, db.ErrProjectNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		slog.Error("failed to load project", "error", err, "project_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, scoring.TransformProject(project, providers))
}

// GetCategories handles GET /api/categories
func (h *LeaderboardHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.Categories)
}
