// SPDX-License-Identifier: MIT
// Package: streak/attendance
//
// errors.go — sentinel errors for the attendance package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context (offending values, strategy name) is attached with %w.
//   • Counting never panics on user input.

package attendance

import "errors"

// ErrInvalidConfiguration indicates that days < 0, constraint < 0, or
// days < constraint was passed to NewConfig.
var ErrInvalidConfiguration = errors.New("attendance: invalid configuration")

// ErrNilConfig indicates that a nil *Config was handed to a strategy.
var ErrNilConfig = errors.New("attendance: config is nil")

// ErrOutOfRange indicates a (remaining, streak) state outside
// 0 ≤ remaining ≤ Days, 0 ≤ streak ≤ Constraint.
var ErrOutOfRange = errors.New("attendance: state out of range")

// ErrOverflow indicates that a count no longer fits in a uint64.
var ErrOverflow = errors.New("attendance: count overflows uint64")

// ErrRecursionDepth indicates that Days exceeds MaxRecursionDays for the
// memoized strategy.
var ErrRecursionDepth = errors.New("attendance: recursion depth exceeds limit")

// ErrUnknownStrategy indicates an unsupported Strategy value or name.
var ErrUnknownStrategy = errors.New("attendance: unknown strategy")

// ErrStrategyMismatch indicates that two strategies disagreed on the same
// configuration. It is never expected; SolveAll reports it instead of
// picking a winner.
var ErrStrategyMismatch = errors.New("attendance: strategies disagree")
