// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the tool-index API.

LeaderboardHandler reads indexed projects from a db.Store and scores them
with the scoring package on every request:

	handler := handlers.NewLeaderboardHandler(store, cfg)

# Provider Filter

The providers query parameter takes a comma-separated list of provider
tags (chatgpt, claude, gemini, other) and may be repeated. Unknown tags
are rejected with 400. On the single-project route, filtered=false
ignores the filter.

# Errors

  - 400: unknown provider tag
  - 404: project missing or not included in the index
  - 500: store failure, reported as "Internal server error"
*/
package handlers
