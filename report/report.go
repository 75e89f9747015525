// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/danielhkuo/tool-index/models"
	"github.com/danielhkuo/tool-index/scoring"
)

var (
	// TitleColor for the report header
	TitleColor = color.New(color.FgMagenta, color.Bold)

	// InfoColor for secondary details
	InfoColor = color.New(color.FgCyan)

	highColor   = color.New(color.FgGreen, color.Bold)
	mediumColor = color.New(color.FgYellow)
	lowColor    = color.New(color.FgRed)
)

// bandColor picks the badge color for a score
func bandColor(score float64) *color.Color {
	switch scoring.Band(score) {
	case scoring.BandHigh:
		return highColor
	case scoring.BandMedium:
		return mediumColor
	default:
		return lowColor
	}
}

// Entry is one ranked row of the report
type Entry struct {
	Project models.TransformedProject
	Runs    int
}

// Build scores projects against providers and ranks them by overall score.
// Equal scores keep store order.
func Build(projects []models.Project, providers []string) []Entry {
	entries := make([]Entry, 0, len(projects))
	for _, p := range projects {
		entries = append(entries, Entry{
			Project: scoring.TransformProject(p, providers),
			Runs:    len(scoring.FlattenRuns(p.Surveys)),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Project.Scores.Overall > entries[j].Project.Scores.Overall
	})
	return entries
}

// Render writes the ranked leaderboard as text
func Render(w io.Writer, projects []models.Project, providers []string) error {
	entries := Build(projects, providers)

	filter := "all providers"
	if len(providers) > 0 {
		filter = strings.Join(providers, ", ")
	}
	if _, err := TitleColor.Fprintf(w, "Tool Index Leaderboard (%s)\n", filter); err != nil {
		return err
	}

	totalRuns := 0
	for i, e := range entries {
		totalRuns += e.Runs
		if err := renderEntry(w, i+1, e); err != nil {
			return err
		}
	}

	_, err := InfoColor.Fprintf(w, "%s projects, %s runs\n",
		humanize.Comma(int64(len(entries))), humanize.Comma(int64(totalRuns)))
	return err
}

func renderEntry(w io.Writer, rank int, e Entry) error {
	p := e.Project
	overall := p.Scores.Overall

	fmt.Fprintf(w, "%-5s %s [%s] ", humanize.Ordinal(rank), p.Name, p.Category)
	bandColor(overall).Fprintf(w, "%.1f", overall)
	fmt.Fprintln(w)

	for _, c := range models.Categories {
		score := p.Scores.Categories[c].Score
		fmt.Fprintf(w, "      %-28s ", c)
		bandColor(score).Fprintf(w, "%.1f", score)
		fmt.Fprintln(w)
	}

	names := make([]string, 0, len(p.Scores.TopModels))
	for _, m := range p.Scores.TopModels {
		names = append(names, fmt.Sprintf("%s %.1f", scoring.ReadableModelName(m.Name), m.Score))
	}
	if len(names) == 0 {
		names = append(names, "none")
	}
	_, err := InfoColor.Fprintf(w, "      top: %s (%s runs)\n", strings.Join(names, ", "), humanize.Comma(int64(e.Runs)))
	return err
}
