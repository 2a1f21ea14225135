package domain

import "strings"

// MaxRelevance is the upper bound of the relevance scale.
const MaxRelevance = 100

// minTermLength is the shortest query term that contributes to the
// per-term bonuses. Shorter terms are treated as noise.
const minTermLength = 3

// Score computes the heuristic relevance of a candidate against a
// query. The result is always in [0, MaxRelevance].
//
// Inputs are trimmed and lower-cased before comparison. The
// whole-string checks are exclusive by priority: an exact title match
// scores the full 100, otherwise a title substring match scores 50,
// otherwise a description substring match scores 25. Each qualifying
// query term then adds 10 for a title hit and 5 for a description hit
// (both may apply), and a title that starts with the query adds 15.
// The running sum may exceed 100 and is clamped.
//
// The heuristic is deterministic and order-independent: no stemming,
// no fuzzy matching, no locale-aware casing. Equal scores are ordered
// by the dispatcher's stable merge, never here.
func Score(query, title, description string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	t := strings.ToLower(strings.TrimSpace(title))
	d := strings.ToLower(strings.TrimSpace(description))

	score := 0
	switch {
	case t == q:
		score += 100
	case strings.Contains(t, q):
		score += 50
	case strings.Contains(d, q):
		score += 25
	}

	for _, term := range strings.Fields(q) {
		if len(term) < minTermLength {
			continue
		}
		if strings.Contains(t, term) {
			score += 10
		}
		if strings.Contains(d, term) {
			score += 5
		}
	}

	if strings.HasPrefix(t, q) {
		score += 15
	}

	if score > MaxRelevance {
		score = MaxRelevance
	}
	return score
}
