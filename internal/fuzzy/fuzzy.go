// Package fuzzy provides edit-distance matching for go-argv error suggestions.
// Used by argv/errors.go to propose a registered identifier when the user
// mistypes an option or flag name.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher ranks candidate identifiers against a mistyped input.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher that accepts candidates within maxDistance edits.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // single-character inputs produce useless suggestions
	}
}

// Match is one ranked candidate.
type Match struct {
	Value    string
	Distance int
}

// FindBest returns the closest candidate, or "" if none is within range.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns all candidates within the distance budget,
// closest first. Exact matches are excluded since they are not typos.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	input = strings.ToLower(input)

	var matches []Match
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}

		distance := m.levenshtein(input, lower)
		if distance <= m.maxDistance {
			matches = append(matches, Match{Value: candidate, Distance: distance})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance == matches[j].Distance {
			return matches[i].Value < matches[j].Value
		}
		return matches[i].Distance < matches[j].Distance
	})

	return matches
}

// FindBestIdentifier matches a dashed-or-bare input against registered long
// identifiers. Leading dashes on the input are ignored so "--verbos" and
// "verbos" rank identically.
func FindBestIdentifier(input string, identifiers []string, maxDistance int) string {
	input = strings.TrimLeft(input, "-")
	return NewMatcher(maxDistance).FindBest(input, identifiers)
}

// levenshtein computes the edit distance between a and b using two rows,
// terminating early once the row minimum exceeds the distance budget.
func (m *Matcher) levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	current := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for i := 1; i <= len(b); i++ {
		current[0] = i
		rowMin := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}

			current[j] = minThree(
				current[j-1]+1,     // insertion
				previous[j]+1,      // deletion
				previous[j-1]+cost, // substitution
			)

			if current[j] < rowMin {
				rowMin = current[j]
			}
		}

		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}

		previous, current = current, previous
	}

	return previous[len(a)]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minThree(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
