package resolver

import (
	"testing"
)

func TestResolveTypoFindsCanonicalName(t *testing.T) {
	got, ok := Resolve("Lebrun Jams", []string{"LeBron James", "Luka Doncic"})
	if !ok || got != "LeBron James" {
		t.Fatalf("expected LeBron James, got %q ok=%v", got, ok)
	}
}

func TestResolveNoMatch(t *testing.T) {
	if got, ok := Resolve("xyz123", []string{"LeBron James"}); ok {
		t.Fatalf("expected no match, got %q", got)
	}
}

func TestResolveEmptyCandidates(t *testing.T) {
	if _, ok := Resolve("LeBron James", nil); ok {
		t.Fatal("expected no match for empty candidate list")
	}
}

func TestResolveCutoffBoundary(t *testing.T) {
	// 3 matching code points over 10 total is exactly 0.6.
	if got := Ratio("abcxy", "abcde"); got != 0.6 {
		t.Fatalf("expected ratio 0.6, got %v", got)
	}
	if got, ok := Resolve("abcde", []string{"abcxy"}); !ok || got != "abcxy" {
		t.Fatalf("expected candidate at cutoff to be included, got %q ok=%v", got, ok)
	}

	// 3 over 11 falls just below.
	if got := Ratio("abcxyz", "abcde"); got >= DefaultCutoff {
		t.Fatalf("expected ratio below cutoff, got %v", got)
	}
	if got, ok := Resolve("abcde", []string{"abcxyz"}); ok {
		t.Fatalf("expected candidate below cutoff to be excluded, got %q", got)
	}
}

func TestResolveTieGoesToEarliestCandidate(t *testing.T) {
	if got, _ := Resolve("abc", []string{"abd", "abe"}); got != "abd" {
		t.Fatalf("expected first tied candidate abd, got %q", got)
	}
	if got, _ := Resolve("abc", []string{"abe", "abd"}); got != "abe" {
		t.Fatalf("expected first tied candidate abe, got %q", got)
	}
}

func TestResolvePrefersHigherScoreRegardlessOfOrder(t *testing.T) {
	candidates := []string{"Luka Doncic", "Jalen Brunson", "Jalen Green"}
	got, ok := Resolve("Jalen Brunsen", candidates)
	if !ok || got != "Jalen Brunson" {
		t.Fatalf("expected Jalen Brunson, got %q ok=%v", got, ok)
	}
}

func TestResolveIsDeterministicAndReturnsMember(t *testing.T) {
	candidates := []string{"Stephen Curry", "Seth Curry", "Steven Adams", "Stephon Castle"}
	queries := []string{"Steph Curry", "Steven Adam", "Seth", "Castle", "Curry Stephen"}
	for _, q := range queries {
		first, ok1 := Resolve(q, candidates)
		second, ok2 := Resolve(q, candidates)
		if first != second || ok1 != ok2 {
			t.Fatalf("non-deterministic result for %q: %q/%v vs %q/%v", q, first, ok1, second, ok2)
		}
		if ok1 && !contains(candidates, first) {
			t.Fatalf("result %q for %q is not a candidate", first, q)
		}
	}
}

func TestNewRejectsCutoffOutOfRange(t *testing.T) {
	for _, c := range []float64{-0.1, 1.01} {
		if _, err := New(WithCutoff(c)); err == nil {
			t.Fatalf("expected error for cutoff %v", c)
		}
	}
	r, err := New(WithCutoff(0.9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Cutoff() != 0.9 {
		t.Fatalf("expected cutoff 0.9, got %v", r.Cutoff())
	}
	if _, ok := r.Resolve("Lebrun Jams", []string{"LeBron James"}); ok {
		t.Fatal("expected stricter cutoff to reject the typo")
	}
}

func TestBestReportsScoreAndIndex(t *testing.T) {
	r, _ := New()
	m, ok := r.Best("Seth Curry", []string{"Stephen Curry", "Seth Curry"})
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Name != "Seth Curry" || m.Index != 1 || m.Score != 1 {
		t.Fatalf("unexpected match %+v", m)
	}
}

func TestMatchesOrdersByScoreThenInputOrder(t *testing.T) {
	r, _ := New()
	got := r.Matches("abc", []string{"xyz", "abe", "abc", "abd"}, 0)
	want := []string{"abc", "abe", "abd"}
	if len(got) != len(want) {
		t.Fatalf("expected %d matches, got %+v", len(want), got)
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i].Name)
		}
	}

	if limited := r.Matches("abc", []string{"abe", "abc", "abd"}, 1); len(limited) != 1 || limited[0].Name != "abc" {
		t.Fatalf("expected single best match, got %+v", limited)
	}
}

func TestFoldOption(t *testing.T) {
	r, err := New(WithFold(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Folds() {
		t.Fatalf("expected Folds to report the option")
	}
	m, ok := r.Best("luka  doncic", []string{"LeBron James", "Luka Dončić"})
	if !ok || m.Name != "Luka Dončić" || m.Score != 1 {
		t.Fatalf("expected folded exact match, got %+v ok=%v", m, ok)
	}
}

func TestFold(t *testing.T) {
	cases := map[string]string{
		"Nikola Jokić":         "nikola jokic",
		"  Dennis   Schröder ": "dennis schroder",
		"LeBron James":         "lebron james",
	}
	for in, want := range cases {
		if got := Fold(in); got != want {
			t.Fatalf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
