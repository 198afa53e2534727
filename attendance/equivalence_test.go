// SPDX-License-Identifier: MIT

package attendance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streak/attendance"
)

const (
	// equivalenceMaxDays bounds the strategy cross-check.
	equivalenceMaxDays = 20

	// bruteMaxDays bounds full enumeration (2^days sequences per pair).
	bruteMaxDays = 14
)

// TestStrategies_Equivalent cross-checks all three strategies for every
// valid (days, constraint) pair with days ≤ 20.
func TestStrategies_Equivalent(t *testing.T) {
	for days := 0; days <= equivalenceMaxDays; days++ {
		for constraint := 0; constraint <= days; constraint++ {
			cfg, err := attendance.NewConfig(days, constraint)
			require.NoError(t, err)

			memo, err := attendance.SolveMemoized(cfg)
			require.NoError(t, err)
			table, err := attendance.SolveTabulation(cfg)
			require.NoError(t, err)
			rolling, err := attendance.SolveTwoRows(cfg)
			require.NoError(t, err)

			assert.Equal(t, memo, table, "tabulation days=%d constraint=%d", days, constraint)
			assert.Equal(t, memo, rolling, "two-rows days=%d constraint=%d", days, constraint)
		}
	}
}

// TestBruteForce_Totals compares the counted totals with full enumeration.
func TestBruteForce_Totals(t *testing.T) {
	for days := 0; days <= bruteMaxDays; days++ {
		for constraint := 0; constraint <= days; constraint++ {
			cfg, err := attendance.NewConfig(days, constraint)
			require.NoError(t, err)
			total, _, seeded := bruteCounts(days, constraint)

			got, err := attendance.SolveTwoRows(cfg)
			require.NoError(t, err)
			assert.Equal(t, total, got.Total, "total days=%d constraint=%d", days, constraint)
			assert.Equal(t, seeded, got.EndingInAbsence, "seeded days=%d constraint=%d", days, constraint)
		}
	}
}

// TestBruteForce_SeededMatchesFilter confirms that the seeded sub-count
// ways(days-1, 1) coincides with a direct "valid and absent on the last
// day" filter over all sequences.
func TestBruteForce_SeededMatchesFilter(t *testing.T) {
	for days := 1; days <= bruteMaxDays; days++ {
		for constraint := 0; constraint <= days; constraint++ {
			_, lastAbsent, seeded := bruteCounts(days, constraint)
			assert.Equal(t, lastAbsent, seeded, "days=%d constraint=%d", days, constraint)

			cfg, err := attendance.NewConfig(days, constraint)
			require.NoError(t, err)
			got, err := attendance.SolveMemoized(cfg)
			require.NoError(t, err)
			assert.Equal(t, lastAbsent, got.EndingInAbsence, "days=%d constraint=%d", days, constraint)
		}
	}
}

// TestBruteForce_FiveDaysFourStreak is the reference scenario: 32
// sequences, three of which contain four or more consecutive absences.
func TestBruteForce_FiveDaysFourStreak(t *testing.T) {
	total, lastAbsent, seeded := bruteCounts(5, 4)
	assert.Equal(t, uint64(29), total)
	assert.Equal(t, uint64(14), lastAbsent)
	assert.Equal(t, uint64(14), seeded)

	cfg, err := attendance.NewConfig(5, 4)
	require.NoError(t, err)
	literal, err := cfg.CountWays(4, 1)
	require.NoError(t, err)
	assert.Equal(t, seeded, literal, "literal seeded recursion output")
}

// TestTotal_MonotoneInConstraint verifies that loosening the constraint
// never removes sequences.
func TestTotal_MonotoneInConstraint(t *testing.T) {
	for days := 0; days <= equivalenceMaxDays; days++ {
		var prev uint64
		for constraint := 0; constraint <= days; constraint++ {
			cfg, err := attendance.NewConfig(days, constraint)
			require.NoError(t, err)
			got, err := attendance.SolveTabulation(cfg)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got.Total, prev, "days=%d constraint=%d", days, constraint)
			prev = got.Total
		}
	}
}

// TestTotal_ConstraintEqualsDays checks the loosest constraint: only the
// all-absent sequence reaches the streak.
func TestTotal_ConstraintEqualsDays(t *testing.T) {
	for days := 1; days <= equivalenceMaxDays; days++ {
		cfg, err := attendance.NewConfig(days, days)
		require.NoError(t, err)
		got, err := attendance.SolveMemoized(cfg)
		require.NoError(t, err)
		assert.Equal(t, uint64(1)<<uint(days)-1, got.Total, "days=%d", days)
	}

	total, _, _ := bruteCounts(3, 3)
	assert.Equal(t, uint64(7), total)
}

// TestTotal_EmptySpan checks that days=0 admits exactly the empty sequence.
func TestTotal_EmptySpan(t *testing.T) {
	cfg, err := attendance.NewConfig(0, 0)
	require.NoError(t, err)

	reports, err := attendance.SolveAll(cfg)
	require.NoError(t, err)
	for _, r := range reports {
		assert.Equal(t, uint64(1), r.Result.Total, r.Strategy.Name())
		assert.Zero(t, r.Result.EndingInAbsence, r.Strategy.Name())
	}
}
