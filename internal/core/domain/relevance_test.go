package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		title       string
		description string
		expected    int
	}{
		{
			name:     "exact title match caps at 100",
			query:    "file storage",
			title:    "File Storage",
			expected: 100,
		},
		{
			name:        "exact match ignores description",
			query:       "file storage",
			title:       "File Storage",
			description: "file storage for your file storage needs",
			expected:    100,
		},
		{
			name:     "title substring plus term and prefix",
			query:    "analytics",
			title:    "Analytics Dashboard",
			expected: 75, // 50 substring + 10 term + 15 prefix
		},
		{
			name:     "title substring plus term, no prefix",
			query:    "dash",
			title:    "Analytics Dashboard",
			expected: 60, // 50 substring + 10 term
		},
		{
			name:        "description substring plus term",
			query:       "quota",
			title:       "Billing",
			description: "Monthly quota limits per plan",
			expected:    30, // 25 substring + 5 term
		},
		{
			name:        "term hits both title and description",
			query:       "storage",
			title:       "File Storage",
			description: "Object storage buckets",
			expected:    65, // 50 title substring + 10 + 5 terms
		},
		{
			name:     "short terms are noise",
			query:    "ai",
			title:    "AI Tools",
			expected: 65, // 50 substring + 15 prefix, no term bonus for len < 3
		},
		{
			name:     "no match",
			query:    "banana",
			title:    "Analytics Dashboard",
			expected: 0,
		},
		{
			name:     "empty query",
			query:    "",
			title:    "Analytics Dashboard",
			expected: 0,
		},
		{
			name:     "whitespace query",
			query:    "   \t ",
			title:    "Analytics Dashboard",
			expected: 0,
		},
		{
			name:     "case insensitive",
			query:    "ANALYTICS DASHBOARD",
			title:    "analytics dashboard",
			expected: 100,
		},
		{
			name:        "sum clamps to 100",
			query:       "alpha beta gamma delta",
			title:       "alpha beta gamma delta extras",
			description: "alpha beta gamma delta",
			expected:    100, // 50 + 4*(10+5) + 15 = 125 before clamping
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.query, tt.title, tt.description))
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	queries := []string{"", "a", "tool", "analytics dashboard", "alpha beta gamma delta epsilon"}
	titles := []string{"", "Analytics Dashboard", "alpha beta gamma delta epsilon"}
	descriptions := []string{"", "alpha beta gamma delta epsilon tools"}

	for _, q := range queries {
		for _, title := range titles {
			for _, desc := range descriptions {
				score := Score(q, title, desc)
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, MaxRelevance)
			}
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	first := Score("analyt", "Analytics Dashboard", "Usage metrics")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Score("analyt", "Analytics Dashboard", "Usage metrics"))
	}
}
