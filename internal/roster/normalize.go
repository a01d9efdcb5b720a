package roster

import (
	"fmt"
	"strings"
)

const (
	DefaultMinMinutes  = 5.0
	DefaultTotalMarker = "TOT"
)

// InvalidPolicy decides what happens to rows whose minutes cannot be parsed.
type InvalidPolicy string

const (
	PolicyDrop  InvalidPolicy = "drop"
	PolicyError InvalidPolicy = "error"
	PolicyZero  InvalidPolicy = "zero"
)

// ParsePolicy accepts drop, error or zero (case-insensitive). Empty means drop.
func ParsePolicy(raw string) (InvalidPolicy, error) {
	switch p := InvalidPolicy(strings.ToLower(strings.TrimSpace(raw))); p {
	case "":
		return PolicyDrop, nil
	case PolicyDrop, PolicyError, PolicyZero:
		return p, nil
	default:
		return "", fmt.Errorf("roster: unknown invalid-minutes policy %q", raw)
	}
}

// Options tune normalization. MinMinutes is used as given, including zero.
type Options struct {
	MinMinutes     float64
	TotalMarker    string
	InvalidMinutes InvalidPolicy
}

// DefaultOptions keeps rows above 5 minutes, collapses onto "TOT" and drops bad minutes.
func DefaultOptions() Options {
	return Options{
		MinMinutes:     DefaultMinMinutes,
		TotalMarker:    DefaultTotalMarker,
		InvalidMinutes: PolicyDrop,
	}
}

// InvalidMinutesError is returned under PolicyError.
type InvalidMinutesError struct {
	Index  int
	Player string
	Value  string
}

func (e *InvalidMinutesError) Error() string {
	return fmt.Sprintf("roster: row %d (%s) has invalid minutes %q", e.Index, e.Player, e.Value)
}

// Report counts what normalization removed. It never affects the rows.
type Report struct {
	InputRows       int      `json:"inputRows"`
	OutputRows      int      `json:"outputRows"`
	LowMinutes      int      `json:"lowMinutes"`
	InvalidMinutes  int      `json:"invalidMinutes"`
	StintRows       int      `json:"stintRows"`
	DuplicateTotals int      `json:"duplicateTotals"`
	TradedPlayers   int      `json:"tradedPlayers"`
	VanishedPlayers []string `json:"vanishedPlayers,omitempty"`
}

// Result is the clean table plus its report.
type Result struct {
	Rows   []SeasonRow `json:"rows"`
	Report Report      `json:"report"`
}

// Normalizer collapses traded players onto their total row and drops low-minute rows.
type Normalizer struct {
	opts Options
}

// NewNormalizer validates opts. An empty marker or policy falls back to the default.
func NewNormalizer(opts Options) (*Normalizer, error) {
	if opts.TotalMarker == "" {
		opts.TotalMarker = DefaultTotalMarker
	}
	policy, err := ParsePolicy(string(opts.InvalidMinutes))
	if err != nil {
		return nil, err
	}
	opts.InvalidMinutes = policy
	return &Normalizer{opts: opts}, nil
}

// Options reports the effective options.
func (n *Normalizer) Options() Options {
	return n.opts
}

// Normalize runs with DefaultOptions.
func Normalize(rows []SeasonRow) []SeasonRow {
	n, _ := NewNormalizer(DefaultOptions())
	res, _ := n.Normalize(rows)
	return res.Rows
}

type survivor struct {
	index int
	row   SeasonRow
}

// Normalize returns a new table in input order with at most one row per player,
// every row above the minutes floor. The input slice and its maps are not modified.
// It only fails under PolicyError.
func (n *Normalizer) Normalize(rows []SeasonRow) (Result, error) {
	report := Report{InputRows: len(rows)}

	survivors := make([]survivor, 0, len(rows))
	for i, row := range rows {
		minutes, ok := row.MinutesPlayed()
		if !ok {
			switch n.opts.InvalidMinutes {
			case PolicyError:
				return Result{}, &InvalidMinutesError{Index: i, Player: row.Player, Value: row.Minutes}
			case PolicyZero:
				minutes = 0
			default:
				report.InvalidMinutes++
				continue
			}
		}
		if !(minutes > n.opts.MinMinutes) {
			report.LowMinutes++
			continue
		}
		survivors = append(survivors, survivor{index: i, row: row})
	}

	counts := make(map[string]int, len(survivors))
	for _, s := range survivors {
		counts[s.row.Player]++
	}

	out := make([]SeasonRow, 0, len(survivors))
	kept := make(map[string]bool)
	var tradedOrder []string
	for _, s := range survivors {
		player := s.row.Player
		if counts[player] == 1 {
			out = append(out, s.row.Clone())
			continue
		}
		if _, seen := kept[player]; !seen {
			kept[player] = false
			tradedOrder = append(tradedOrder, player)
		}
		if s.row.Team != n.opts.TotalMarker {
			report.StintRows++
			continue
		}
		if kept[player] {
			report.DuplicateTotals++
			continue
		}
		kept[player] = true
		out = append(out, s.row.Clone())
	}

	report.TradedPlayers = len(tradedOrder)
	for _, player := range tradedOrder {
		if !kept[player] {
			report.VanishedPlayers = append(report.VanishedPlayers, player)
		}
	}
	report.OutputRows = len(out)

	return Result{Rows: out, Report: report}, nil
}
