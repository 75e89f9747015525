// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"regexp"
	"strings"
)

// Score bands used when rendering badges
const (
	BandHigh   = "high"
	BandMedium = "medium"
	BandLow    = "low"
)

// Band buckets a 0-10 score: 9 and up is high, 7 and up is medium
func Band(score float64) string {
	switch {
	case score >= 9:
		return BandHigh
	case score >= 7:
		return BandMedium
	default:
		return BandLow
	}
}

type namePattern struct {
	pattern *regexp.Regexp
	name    string
}

// modelNamePatterns is checked in order; more specific ids come first
var modelNamePatterns = []namePattern{
	{regexp.MustCompile(`^claude-3-5-haiku`), "Claude 3.5 Haiku"},
	{regexp.MustCompile(`^claude-3-5-opus`), "Claude 3.5 Opus"},
	{regexp.MustCompile(`^claude-3-sonnet`), "Claude 3 Sonnet"},
	{regexp.MustCompile(`^claude-2\.1`), "Claude 2.1"},
	{regexp.MustCompile(`^claude-2$`), "Claude 2"},
	{regexp.MustCompile(`^claude-instant`), "Claude Instant"},
	{regexp.MustCompile(`^gpt-4-turbo`), "GPT-4 Turbo"},
	{regexp.MustCompile(`^gpt-4o-mini`), "GPT-4 Mini"},
	{regexp.MustCompile(`^gpt-4-32k`), "GPT-4 32K"},
	{regexp.MustCompile(`^gpt-4`), "GPT-4"},
	{regexp.MustCompile(`^gpt-3\.5-turbo-16k`), "GPT-3.5 Turbo 16K"},
	{regexp.MustCompile(`^gpt-3\.5-turbo`), "GPT-3.5 Turbo"},
	{regexp.MustCompile(`^google/gemini-2\.5-flash-preview`), "Gemini 2.5 Flash"},
	{regexp.MustCompile(`^gemini-pro`), "Gemini Pro"},
	{regexp.MustCompile(`^gemini-ultra`), "Gemini Ultra"},
	{regexp.MustCompile(`^sonar-deep-research$`), "Perplexity Deep Research"},
	{regexp.MustCompile(`^sonar$`), "Perplexity Sonar"},
}

// ReadableModelName maps a model id to a display name. Unknown ids are
// returned unchanged.
func ReadableModelName(modelName string) string {
	name := strings.ToLower(modelName)
	for _, p := range modelNamePatterns {
		if p.pattern.MatchString(name) {
			return p.name
		}
	}
	return modelName
}
