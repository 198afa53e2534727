// SPDX-License-Identifier: MIT

// Package attendance - validation helpers shared by every strategy.
//
// All helpers are deterministic and side-effect free; they return only the
// sentinels from errors.go, wrapped with the offending values.
package attendance

import (
	"fmt"
	"math/bits"
)

// NewConfig validates days and constraint and returns a Config.
//
// Contract:
//   - days ≥ 0 and constraint ≥ 0.
//   - constraint ≤ days. constraint == days is allowed; days == 0 (and
//     therefore constraint == 0) describes the empty span.
//
// Errors: ErrInvalidConfiguration.
//
// Complexity: O(1).
func NewConfig(days, constraint int) (*Config, error) {
	if days < 0 || constraint < 0 || days < constraint {
		return nil, fmt.Errorf("days=%d constraint=%d: %w", days, constraint, ErrInvalidConfiguration)
	}

	return &Config{days: days, constraint: constraint}, nil
}

// validateState checks that (remaining, streak) lies inside the table of c.
//
// Complexity: O(1).
func validateState(c *Config, remaining, streak int) error {
	if c == nil {
		return ErrNilConfig
	}
	if remaining < 0 || remaining > c.days || streak < 0 || streak > c.constraint {
		return fmt.Errorf("remaining=%d streak=%d (days=%d constraint=%d): %w",
			remaining, streak, c.days, c.constraint, ErrOutOfRange)
	}

	return nil
}

// addCounts returns a+b or ErrOverflow when the sum does not fit a uint64.
func addCounts(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}

	return sum, nil
}
