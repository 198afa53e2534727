// SPDX-License-Identifier: MIT

// Package attendance defines the configuration, strategies and results of
// the absence-streak counter.
package attendance

import (
	"fmt"
	"strings"
)

// DefaultConstraint is the streak length callers use when none is given:
// missing four or more consecutive days is not allowed.
// The counter itself never reads it; it only seeds CLI defaults.
const DefaultConstraint = 4

// MaxRecursionDays bounds Days for the Memoized strategy, whose recursion
// depth equals Days.
const MaxRecursionDays = 1 << 20

// Strategy selects how the recurrence is evaluated.
//
//   - Memoized   — top-down recursion with a per-call memo. Memory: O(Days·M).
//   - Tabulation — full bottom-up table. Memory: O(Days·M).
//   - TwoRows    — bottom-up with a two-slot row ring. Memory: O(M).
type Strategy int

const (
	// Memoized evaluates ways(n, j) recursively, caching each state once.
	Memoized Strategy = iota

	// Tabulation fills the whole (Days+1)×(M+1) table.
	Tabulation

	// TwoRows keeps only the previous and the current row.
	TwoRows
)

// strategyNames are the short, flag-friendly names accepted by ParseStrategy.
var strategyNames = map[Strategy]string{
	Memoized:   "memoized",
	Tabulation: "tabulation",
	TwoRows:    "two-rows",
}

// strategyLabels are the human-readable labels used in reports.
var strategyLabels = map[Strategy]string{
	Memoized:   "Memoized",
	Tabulation: "Tabulation",
	TwoRows:    "Tabulation with Space Optimization",
}

// Strategies returns every supported strategy in reporting order.
func Strategies() []Strategy {
	return []Strategy{Memoized, Tabulation, TwoRows}
}

// String returns the human-readable label of s.
func (s Strategy) String() string {
	if label, ok := strategyLabels[s]; ok {
		return label
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Name returns the short name of s as accepted by ParseStrategy.
func (s Strategy) Name() string {
	return strategyNames[s]
}

// ParseStrategy maps a short name ("memoized", "tabulation", "two-rows")
// back to its Strategy. Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if strategyNames[s] == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

// Config is a validated (Days, Constraint) pair. Build it with NewConfig;
// the zero value describes the empty span with constraint 0.
type Config struct {
	days       int
	constraint int
}

// Days returns the number of binary decisions in the span.
func (c *Config) Days() int { return c.days }

// Constraint returns the streak length that invalidates a sequence.
func (c *Config) Constraint() int { return c.constraint }

// dead reports whether an incoming streak admits no valid continuation.
// A zero streak is always alive, so Constraint 0 forbids absences but keeps
// the all-present path.
func (c *Config) dead(streak int) bool {
	return streak > 0 && streak >= c.constraint
}

// Result holds the two counts produced by every strategy.
type Result struct {
	// EndingInAbsence is the seeded count ways(Days-1, 1): valid sequences
	// whose final day is absent. Zero when Days == 0.
	EndingInAbsence uint64

	// Total is ways(Days, 0): every valid sequence of length Days.
	Total uint64
}

// String formats r as "<endingInAbsence>/<total>".
func (r Result) String() string {
	return fmt.Sprintf("%d/%d", r.EndingInAbsence, r.Total)
}

// Ratio returns EndingInAbsence/Total as a float64, or 0 when Total is 0.
func (r Result) Ratio() float64 {
	if r.Total == 0 {
		return 0
	}

	return float64(r.EndingInAbsence) / float64(r.Total)
}

// Report pairs a Result with the Strategy that produced it.
type Report struct {
	Strategy Strategy
	Result   Result
}

// memoKey addresses one (remaining days, streak) state of the recursion.
type memoKey struct {
	remaining int
	streak    int
}
