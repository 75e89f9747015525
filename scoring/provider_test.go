// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"testing"

	"github.com/danielhkuo/tool-index/models"
)

func TestClassifyProvider(t *testing.T) {
	tests := []struct {
		model    string
		expected string
	}{
		{"gpt-4o", models.ProviderChatGPT},
		{"GPT-4-Turbo", models.ProviderChatGPT},
		{"openai/chatgpt-4o-latest", models.ProviderChatGPT},
		{"claude-3-5-sonnet", models.ProviderClaude},
		{"Anthropic Claude", models.ProviderClaude},
		{"gemini-pro", models.ProviderGemini},
		{"google/Gemini-2.5-flash-preview", models.ProviderGemini},
		{"sonar", models.ProviderOther},
		{"llama-3-70b", models.ProviderOther},
		{"", models.ProviderOther},
		// gpt is checked before claude
		{"claude-vs-gpt", models.ProviderChatGPT},
	}

	for _, tc := range tests {
		t.Run(tc.model, func(t *testing.T) {
			got := ClassifyProvider(tc.model)
			if got != tc.expected {
				t.Errorf("ClassifyProvider(%q) = %q, expected %q", tc.model, got, tc.expected)
			}
		})
	}
}

func TestInFamily(t *testing.T) {
	tests := []struct {
		model    string
		provider string
		expected bool
	}{
		{"gpt-4o", models.ProviderChatGPT, true},
		{"gpt-4o", models.ProviderClaude, false},
		{"claude-vs-gpt", models.ProviderClaude, true},
		{"GEMINI-ultra", models.ProviderGemini, true},
		{"sonar", models.ProviderOther, false},
		{"gpt-4o", "unknown", false},
	}

	for _, tc := range tests {
		if got := InFamily(tc.model, tc.provider); got != tc.expected {
			t.Errorf("InFamily(%q, %q) = %v, expected %v", tc.model, tc.provider, got, tc.expected)
		}
	}
}

func TestMatchesFilter(t *testing.T) {
	// claude-vs-gpt classifies as chatgpt but is still in the claude family
	if !matchesFilter("claude-vs-gpt", models.ProviderChatGPT, []string{models.ProviderClaude}) {
		t.Error("Expected family match to keep the run")
	}
	if matchesFilter("gpt-4o", models.ProviderChatGPT, []string{models.ProviderClaude}) {
		t.Error("Expected gpt-4o to be filtered out by claude filter")
	}
	if !matchesFilter("sonar", models.ProviderOther, []string{models.ProviderOther}) {
		t.Error("Expected other provider to match other filter")
	}
	if !matchesFilter("anything", models.ProviderOther, nil) {
		t.Error("Expected empty filter to keep every run")
	}
}

func TestParseProviders(t *testing.T) {
	tests := []struct {
		name      string
		input     []string
		expected  []string
		expectErr bool
	}{
		{"empty", nil, []string{}, false},
		{"blank", []string{""}, []string{}, false},
		{"single", []string{"claude"}, []string{"claude"}, false},
		{"comma list", []string{"claude, gemini"}, []string{"claude", "gemini"}, false},
		{"repeated values", []string{"claude", "CHATGPT,claude"}, []string{"claude", "chatgpt"}, false},
		{"unknown", []string{"claude,mistral"}, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseProviders(tc.input...)
			if tc.expectErr {
				if err == nil {
					t.Fatalf("Expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(got) != len(tc.expected) {
				t.Fatalf("Expected %v, got %v", tc.expected, got)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("Expected %v, got %v", tc.expected, got)
				}
			}
		})
	}
}
