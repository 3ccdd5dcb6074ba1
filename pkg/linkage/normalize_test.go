package linkage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "wikidata sitelink",
			input:    "https://en.wikipedia.org/wiki/Abdus_Salam",
			expected: "/wiki/Abdus_Salam",
		},
		{
			name:     "dbpedia link without scheme differences",
			input:    "http://en.wikipedia.org/wiki/Abdus_Salam",
			expected: "/wiki/Abdus_Salam",
		},
		{
			name:     "already canonical",
			input:    "/wiki/Abdus_Salam",
			expected: "/wiki/Abdus_Salam",
		},
		{
			name:     "marker absent passes through",
			input:    "https://example.org/article/42",
			expected: "https://example.org/article/42",
		},
		{
			name:     "empty input stays empty",
			input:    "",
			expected: "",
		},
		{
			name:     "query suffix is kept after the marker",
			input:    "https://en.wikipedia.org/wiki/Abdus_Salam?action=history",
			expected: "/wiki/Abdus_Salam?action=history",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Canonical(tt.input))
		})
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	inputs := []string{
		"https://en.wikipedia.org/wiki/Marie_Curie",
		"/wiki/Marie_Curie",
		"no marker here",
		"",
	}
	for _, input := range inputs {
		once := Canonical(input)
		assert.Equal(t, once, Canonical(once), "canonicalizing twice must equal once for %q", input)
	}
}
