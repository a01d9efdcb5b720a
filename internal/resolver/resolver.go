// Package resolver maps free-text player names onto a directory of canonical names.
package resolver

import (
	"fmt"
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// DefaultCutoff is the minimum similarity a candidate needs to be considered a match.
	DefaultCutoff = 0.6
	// DefaultSuggestions is how many candidates Matches returns when n <= 0.
	DefaultSuggestions = 3
)

// Match is a candidate that met the cutoff.
type Match struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Index int     `json:"-"`
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCutoff overrides the similarity cutoff. Values outside [0,1] make New fail.
func WithCutoff(cutoff float64) Option {
	return func(r *Resolver) {
		r.cutoff = cutoff
	}
}

// WithFold compares case-folded, accent-stripped forms of the names.
func WithFold(enabled bool) Option {
	return func(r *Resolver) {
		r.fold = enabled
	}
}

// Resolver scores a query against candidates with the longest-matching-block ratio.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	cutoff float64
	fold   bool
}

// New builds a Resolver with the default cutoff unless overridden.
func New(opts ...Option) (*Resolver, error) {
	r := &Resolver{cutoff: DefaultCutoff}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.cutoff < 0 || r.cutoff > 1 {
		return nil, fmt.Errorf("resolver: cutoff must be in [0,1], got %v", r.cutoff)
	}
	return r, nil
}

var defaultResolver = &Resolver{cutoff: DefaultCutoff}

// Resolve uses the default cutoff without folding.
func Resolve(query string, candidates []string) (string, bool) {
	return defaultResolver.Resolve(query, candidates)
}

// Cutoff reports the configured similarity cutoff.
func (r *Resolver) Cutoff() float64 {
	return r.cutoff
}

// Folds reports whether names are folded before scoring.
func (r *Resolver) Folds() bool {
	return r.fold
}

// Resolve returns the best scoring candidate at or above the cutoff.
// Ties go to the candidate that appears first. ok is false when nothing qualifies.
func (r *Resolver) Resolve(query string, candidates []string) (string, bool) {
	best, ok := r.Best(query, candidates)
	if !ok {
		return "", false
	}
	return best.Name, true
}

// Best is Resolve with the winning score attached.
func (r *Resolver) Best(query string, candidates []string) (Match, bool) {
	var (
		best  Match
		found bool
	)
	r.scan(query, candidates, func(idx int, score float64) {
		if !found || score > best.Score {
			best = Match{Name: candidates[idx], Score: score, Index: idx}
			found = true
		}
	})
	return best, found
}

// Matches returns up to n qualifying candidates, best first, earlier candidates first on ties.
func (r *Resolver) Matches(query string, candidates []string, n int) []Match {
	if n <= 0 {
		n = DefaultSuggestions
	}
	var out []Match
	r.scan(query, candidates, func(idx int, score float64) {
		out = append(out, Match{Name: candidates[idx], Score: score, Index: idx})
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// scan visits every candidate whose ratio meets the cutoff, in input order.
// The query is the second sequence so its index is built once per call.
func (r *Resolver) scan(query string, candidates []string, visit func(idx int, score float64)) {
	if len(candidates) == 0 {
		return
	}
	matcher := difflib.NewMatcher(nil, r.sequence(query))
	for idx, candidate := range candidates {
		matcher.SetSeq1(r.sequence(candidate))
		if matcher.RealQuickRatio() < r.cutoff || matcher.QuickRatio() < r.cutoff {
			continue
		}
		score := matcher.Ratio()
		if score < r.cutoff {
			continue
		}
		visit(idx, score)
	}
}

func (r *Resolver) sequence(s string) []string {
	if r.fold {
		s = Fold(s)
	}
	return splitRunes(s)
}

// Ratio is the similarity of a and b on code points, in [0,1].
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
