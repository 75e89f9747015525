// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/tool-index/models"
)

// familyMarkers maps each named provider to the substring that identifies
// its models. Order matters: ClassifyProvider checks them top to bottom.
var familyMarkers = []struct {
	provider string
	marker   string
}{
	{models.ProviderChatGPT, "gpt"},
	{models.ProviderClaude, "claude"},
	{models.ProviderGemini, "gemini"},
}

// ClassifyProvider derives a provider tag from a free-text model name
func ClassifyProvider(modelName string) string {
	name := strings.ToLower(modelName)
	for _, f := range familyMarkers {
		if strings.Contains(name, f.marker) {
			return f.provider
		}
	}
	return models.ProviderOther
}

// InFamily reports whether modelName carries the marker of provider.
// Always false for ProviderOther.
func InFamily(modelName, provider string) bool {
	name := strings.ToLower(modelName)
	for _, f := range familyMarkers {
		if f.provider == provider {
			return strings.Contains(name, f.marker)
		}
	}
	return false
}

// matchesFilter reports whether a run from modelName survives the provider
// filter. An empty filter keeps everything.
func matchesFilter(modelName, provider string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if provider == s || InFamily(modelName, s) {
			return true
		}
	}
	return false
}

// IsProvider reports whether tag is a known provider tag
func IsProvider(tag string) bool {
	switch tag {
	case models.ProviderChatGPT, models.ProviderClaude, models.ProviderGemini, models.ProviderOther:
		return true
	}
	return false
}

// ParseProviders splits a comma-separated provider list, dropping blanks and
// duplicates. Tags are matched case-insensitively.
func ParseProviders(values ...string) ([]string, error) {
	providers := []string{}
	seen := make(map[string]bool)
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			tag := strings.ToLower(strings.TrimSpace(part))
			if tag == "" || seen[tag] {
				continue
			}
			if !IsProvider(tag) {
				return nil, fmt.Errorf("unknown provider %q", part)
			}
			seen[tag] = true
			providers = append(providers, tag)
		}
	}
	return providers, nil
}
