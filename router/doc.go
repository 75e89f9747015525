// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the tool-index API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Leaderboard (public, cached):

	GET /api/projects                 - Indexed projects with raw survey data
	GET /api/leaderboard              - Scored projects (?providers=claude,gemini)
	GET /api/leaderboard/{id}         - One scored project (?filtered=false)
	GET /api/categories               - Category labels in display order

Every /api route is logged and carries
Cache-Control: public, s-maxage=<CacheMaxAge>, stale-while-revalidate=<StaleWhileRevalidate>.
*/
package router
