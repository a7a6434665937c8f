package fuzzy

import "testing"

// TestFindBest tests that the closest candidate wins.
func TestFindBest(t *testing.T) {
	m := NewMatcher(2)
	candidates := []string{"verbose", "version", "help"}

	if got := m.FindBest("verbos", candidates); got != "verbose" {
		t.Errorf("Expected 'verbose', got %q", got)
	}
	if got := m.FindBest("versio", candidates); got != "version" {
		t.Errorf("Expected 'version', got %q", got)
	}
}

// TestFindBestNoMatch tests the distance budget.
func TestFindBestNoMatch(t *testing.T) {
	m := NewMatcher(2)
	if got := m.FindBest("xyzzy", []string{"verbose", "help"}); got != "" {
		t.Errorf("Expected no match, got %q", got)
	}
}

// TestFindMatchesExcludesExact tests that an exact hit is not a typo.
func TestFindMatchesExcludesExact(t *testing.T) {
	m := NewMatcher(2)
	matches := m.FindMatches("help", []string{"help", "helper"})

	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	if matches[0].Value != "helper" {
		t.Errorf("Expected 'helper', got %q", matches[0].Value)
	}
}

// TestFindMatchesOrdering tests distance-then-value ordering.
func TestFindMatchesOrdering(t *testing.T) {
	m := NewMatcher(3)
	matches := m.FindMatches("thread", []string{"threads", "thread-id", "spread"})

	if len(matches) < 2 {
		t.Fatalf("Expected at least 2 matches, got %d", len(matches))
	}
	if matches[0].Value != "threads" {
		t.Errorf("Expected 'threads' first, got %q", matches[0].Value)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Distance < matches[i-1].Distance {
			t.Errorf("Matches out of order at %d: %v", i, matches)
		}
	}
}

// TestShortInputIgnored tests that single characters never suggest.
func TestShortInputIgnored(t *testing.T) {
	m := NewMatcher(2)
	if got := m.FindBest("v", []string{"vv"}); got != "" {
		t.Errorf("Expected no suggestion for one-char input, got %q", got)
	}
}

// TestFindBestIdentifier tests dash trimming on the input side.
func TestFindBestIdentifier(t *testing.T) {
	ids := []string{"verbose", "version"}
	if got := FindBestIdentifier("--verbos", ids, 2); got != "verbose" {
		t.Errorf("Expected 'verbose', got %q", got)
	}
	if got := FindBestIdentifier("verbos", ids, 2); got != "verbose" {
		t.Errorf("Expected 'verbose', got %q", got)
	}
}

// TestCaseInsensitive tests that matching folds case but reports the
// registered spelling.
func TestCaseInsensitive(t *testing.T) {
	m := NewMatcher(2)
	if got := m.FindBest("VERBOS", []string{"verbose"}); got != "verbose" {
		t.Errorf("Expected 'verbose', got %q", got)
	}
}
