// SPDX-License-Identifier: MIT

package attendance

import "fmt"

// memo is the cache of a single top-level CountWays call.
// It is never shared between calls.
type memo struct {
	cfg   *Config
	cache map[memoKey]uint64
}

// CountWays returns the number of ways to fill remaining more days, given
// an incoming absence streak of streak, without ever reaching the
// configured constraint.
//
// Recurrence:
//
//	ways(n, j) = 0                              if j > 0 and j ≥ Constraint
//	ways(0, j) = 1                              otherwise
//	ways(n, j) = ways(n-1, j+1) + ways(n-1, 0)  absent + present
//
// Every call starts from an empty memo, so the total and the seeded
// ending-in-absence counts are two independent evaluations.
//
// Errors: ErrNilConfig, ErrOutOfRange, ErrRecursionDepth, ErrOverflow.
//
// Complexity: O(remaining·Constraint) time and memo entries,
// O(remaining) recursion depth.
func (c *Config) CountWays(remaining, streak int) (uint64, error) {
	if err := validateState(c, remaining, streak); err != nil {
		return 0, err
	}
	if remaining > MaxRecursionDays {
		return 0, fmt.Errorf("remaining=%d limit=%d: %w", remaining, MaxRecursionDays, ErrRecursionDepth)
	}

	m := &memo{cfg: c, cache: make(map[memoKey]uint64)}

	return m.ways(remaining, streak)
}

// ways evaluates the recurrence for one state.
func (m *memo) ways(remaining, streak int) (uint64, error) {
	// The streak has already reached the forbidden length.
	if m.cfg.dead(streak) {
		return 0, nil
	}
	if remaining == 0 {
		return 1, nil
	}

	key := memoKey{remaining: remaining, streak: streak}
	if v, ok := m.cache[key]; ok {
		return v, nil
	}

	absent, err := m.ways(remaining-1, streak+1)
	if err != nil {
		return 0, err
	}
	present, err := m.ways(remaining-1, 0)
	if err != nil {
		return 0, err
	}
	total, err := addCounts(absent, present)
	if err != nil {
		return 0, err
	}
	m.cache[key] = total

	return total, nil
}

// SolveMemoized computes Total = ways(Days, 0) and
// EndingInAbsence = ways(Days-1, 1), each with its own memo.
//
// Edge cases:
//   - Days == 0: the empty sequence is the only one; EndingInAbsence = 0.
//   - Constraint ≤ 1: the seeded streak of 1 is already dead; EndingInAbsence = 0.
//
// Errors: ErrNilConfig, ErrRecursionDepth, ErrOverflow.
func SolveMemoized(cfg *Config) (Result, error) {
	if cfg == nil {
		return Result{}, ErrNilConfig
	}

	total, err := cfg.CountWays(cfg.days, 0)
	if err != nil {
		return Result{}, err
	}
	if cfg.days == 0 || cfg.dead(1) {
		return Result{Total: total}, nil
	}

	// Last day forced absent: one day consumed, streak starts at 1.
	ending, err := cfg.CountWays(cfg.days-1, 1)
	if err != nil {
		return Result{}, err
	}

	return Result{EndingInAbsence: ending, Total: total}, nil
}
