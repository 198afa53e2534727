// SPDX-License-Identifier: MIT

package attendance_test

import (
	"fmt"

	"github.com/katalvlaran/streak/attendance"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A five-day term where missing four or more consecutive days is not
//	allowed. Of the 32 possible attendance records, three break the rule;
//	14 of the remaining 29 miss the final day (the ceremony).
//
// Complexity: O(Days·Constraint) time, O(Constraint) memory (TwoRows).
func ExampleSolve() {
	cfg, err := attendance.NewConfig(5, attendance.DefaultConstraint)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := attendance.Solve(cfg, attendance.TwoRows)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%v (%.4f)\n", res, res.Ratio())
	// Output:
	// 14/29 (0.4828)
}

// ExampleSolveAll runs every strategy on a ten-day term.
func ExampleSolveAll() {
	cfg, _ := attendance.NewConfig(10, 4)

	reports, err := attendance.SolveAll(cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range reports {
		fmt.Printf("[%s]: %v\n", r.Strategy, r.Result)
	}
	// Output:
	// [Memoized]: 372/773
	// [Tabulation]: 372/773
	// [Tabulation with Space Optimization]: 372/773
}

// ExampleTable prints the full table for three days where two consecutive
// absences are forbidden. Row i is "i days remaining", column j is the
// incoming streak.
func ExampleTable() {
	cfg, _ := attendance.NewConfig(3, 2)

	dp, _ := attendance.Table(cfg)
	for i, row := range dp {
		fmt.Println(i, row)
	}
	// Output:
	// 0 [1 1 0]
	// 1 [2 1 0]
	// 2 [3 2 0]
	// 3 [5 3 0]
}

// ExampleConfig_CountWays evaluates single states of the recurrence.
func ExampleConfig_CountWays() {
	cfg, _ := attendance.NewConfig(5, 4)

	total, _ := cfg.CountWays(5, 0)
	seeded, _ := cfg.CountWays(4, 1)
	dead, _ := cfg.CountWays(4, 4)
	fmt.Println(total, seeded, dead)
	// Output:
	// 29 14 0
}

// ExampleNewConfig shows the validation error for an impossible span.
func ExampleNewConfig() {
	_, err := attendance.NewConfig(3, 4)
	fmt.Println(err)
	// Output:
	// days=3 constraint=4: attendance: invalid configuration
}
