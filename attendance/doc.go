// SPDX-License-Identifier: MIT

// Package attendance counts present/absent day sequences that never contain
// a forbidden run of consecutive absences.
//
// 🚀 What does it count?
//
//	For a span of Days decisions (present / absent) and a Constraint M, a
//	sequence is valid when no run of M or more consecutive absences occurs.
//	Two numbers are produced for every configuration:
//	  • Total           — how many valid sequences of length Days exist
//	  • EndingInAbsence — how many of them are absent on the final day,
//	                      obtained by a seeded sub-count (spend the last day
//	                      absent, streak = 1, complete the other Days-1 days)
//
//	EndingInAbsence/Total is the classic "probability of missing the
//	graduation ceremony" ratio.
//
// ✨ Three equivalent strategies over one recurrence:
//   - Memoized   — top-down recursion over (remaining days, streak), cached
//   - Tabulation — bottom-up (Days+1)×(M+1) table
//   - TwoRows    — the same table kept as a two-slot ring of rows, O(M) memory
//
// The recurrence (streak j, remaining days n):
//
//	ways(n, j) = 0                              if j > 0 and j ≥ M
//	ways(0, j) = 1                              otherwise
//	ways(n, j) = ways(n-1, j+1) + ways(n-1, 0)  absent + present
//
// A streak of zero is never dead, so M = 0 forbids absences outright and
// leaves the all-present sequence as the only valid one.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/streak/attendance"
//
//	cfg, err := attendance.NewConfig(5, 4)
//	if err != nil {
//	  // errors.Is(err, attendance.ErrInvalidConfiguration)
//	}
//	res, err := attendance.Solve(cfg, attendance.TwoRows)
//	fmt.Println(res) // 14/29
//
// Performance:
//
//   - Time:   O(Days·M) for every strategy
//   - Memory: O(Days·M) (Memoized, Tabulation) or O(M) (TwoRows)
//
// Counts are uint64; every addition is checked and a carry surfaces as
// ErrOverflow instead of wrapping.
//
// Scalability caveat: Memoized recurses Days levels deep and refuses
// configurations with Days > MaxRecursionDays (ErrRecursionDepth). Use one
// of the tabulated strategies for longer spans.
package attendance
