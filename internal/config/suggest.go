package config

import (
	"github.com/sahilm/fuzzy"
)

// Suggest returns the candidate closest to input, or "" when nothing is close.
func Suggest(input string, candidates []string) string {
	if input == "" || len(candidates) == 0 {
		return ""
	}

	// Abbreviations and typos that drop letters: "sep" -> "sepolia"
	if matches := fuzzy.Find(input, candidates); len(matches) > 0 {
		return matches[0].Str
	}

	// Typos that add letters: "sepoliaa" -> "sepolia"
	for _, candidate := range candidates {
		if matches := fuzzy.Find(candidate, []string{input}); len(matches) > 0 {
			return candidate
		}
	}

	return ""
}
