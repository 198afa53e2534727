// Package streak counts attendance records — present/absent day sequences —
// that never contain a forbidden run of consecutive absences.
//
// 🚀 What is streak?
//
//	A small, dependency-light module built around one recurrence and three
//	equivalent ways to evaluate it:
//		• Memoized   — top-down recursion with a per-call cache
//		• Tabulation — bottom-up full table
//		• TwoRows    — bottom-up with a two-slot row ring, O(M) memory
//
//	For a span of N days and a constraint M it reports the number of valid
//	records and how many of them are absent on the final day.
//
// Under the hood:
//
//	attendance/   — Config, the three strategies, Solve / SolveAll dispatcher
//	internal/cli/ — cobra command tree, .env defaults, text / YAML rendering
//	cmd/streak/   — the streak binary
//	examples/     — runnable scenario: the graduation ceremony
//
// Quick example:
//
//	N = 5, M = 4
//	32 records, 3 contain AAAA → 29 valid, 14 of them miss day 5 → 14/29
//
//	go run ./cmd/streak 5
package streak
