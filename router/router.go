// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/tool-index/cliparse"
	"github.com/danielhkuo/tool-index/db"
	"github.com/danielhkuo/tool-index/handlers"
	"github.com/danielhkuo/tool-index/middleware"
)

func NewRouter(store *db.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	leaderboardHandler := handlers.NewLeaderboardHandler(store, cfg)

	// cached wraps read endpoints with logging and shared-cache headers
	cached := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithCache(cfg.CacheMaxAge, cfg.StaleWhileRevalidate, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Raw survey data
	mux.HandleFunc("GET /api/projects", cached(leaderboardHandler.GetProjects))

	// Scored leaderboard
	mux.HandleFunc("GET /api/leaderboard", cached(leaderboardHandler.GetLeaderboard))
	mux.HandleFunc("GET /api/leaderboard/{id}", cached(leaderboardHandler.GetProjectLeaderboard))
	mux.HandleFunc("GET /api/categories", cached(leaderboardHandler.GetCategories))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tool-index API v1"))
	})

	return mux
}
