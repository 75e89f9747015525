// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package report prints the leaderboard to a terminal. Scores are colored
// by band (green, yellow, red) and counts use go-humanize formatting.
package report
