// SPDX-License-Identifier: MIT

// Package attendance - unified dispatcher for the counting strategies.
//
//   - Solve routes one Config to the requested Strategy.
//   - SolveAll runs every strategy and insists that they agree.
package attendance

import "fmt"

// Solve evaluates cfg with strategy s.
//
// Errors: ErrNilConfig, ErrUnknownStrategy, and whatever the strategy
// returns (ErrRecursionDepth, ErrOverflow).
func Solve(cfg *Config, s Strategy) (Result, error) {
	if cfg == nil {
		return Result{}, ErrNilConfig
	}

	switch s {
	case Memoized:
		return SolveMemoized(cfg)
	case Tabulation:
		return SolveTabulation(cfg)
	case TwoRows:
		return SolveTwoRows(cfg)
	default:
		return Result{}, fmt.Errorf("%v: %w", s, ErrUnknownStrategy)
	}
}

// SolveAll evaluates cfg with every strategy from Strategies, in order.
// The first failing strategy aborts the run; no partial reports are
// returned. If any Result differs from the first one, ErrStrategyMismatch
// is returned.
func SolveAll(cfg *Config) ([]Report, error) {
	strategies := Strategies()
	reports := make([]Report, 0, len(strategies))

	for _, s := range strategies {
		res, err := Solve(cfg, s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
		reports = append(reports, Report{Strategy: s, Result: res})
	}

	for _, r := range reports[1:] {
		if r.Result != reports[0].Result {
			return nil, fmt.Errorf("%s=%v %s=%v: %w",
				reports[0].Strategy.Name(), reports[0].Result,
				r.Strategy.Name(), r.Result, ErrStrategyMismatch)
		}
	}

	return reports, nil
}
