// SPDX-License-Identifier: MIT

package attendance

// Tabulation — bottom-up evaluation of the streak recurrence.
//
// Algorithm Outline (Full Table):
//  1. Allocate dp with Days+1 rows and Constraint+1 columns; dp[i][j] is the
//     number of ways to complete i remaining days with incoming streak j.
//  2. Initialize row 0: dp[0][j] = 1 for every live streak j, 0 for the
//     dead column Constraint.
//  3. For i = 1..Days, for j = Constraint..0 (descending):
//     dp[i][j] = dp[i-1][j+1] + dp[i-1][0]   (absent + present)
//     with dead columns forced to 0 and dp[i-1][Constraint+1] read as 0.
//  4. Total = dp[Days][0], EndingInAbsence = dp[Days-1][1].
//
// Memory Modes:
//   - Tabulation — keep every row. Memory: O(Days·Constraint).
//   - TwoRows    — keep a two-slot ring of rows. Memory: O(Constraint).

// seedRow writes row 0 (no remaining days) into row.
func seedRow(c *Config, row []uint64) {
	var j int
	for j = range row {
		if c.dead(j) {
			row[j] = 0
			continue
		}
		row[j] = 1
	}
}

// fillRow derives cur (i remaining days) from prev (i-1 remaining days).
// cur and prev must be distinct slices of length Constraint+1; cur is fully
// overwritten, so a recycled buffer is safe.
//
// Complexity: O(Constraint).
func fillRow(c *Config, prev, cur []uint64) error {
	var (
		j       int
		absent  uint64
		present = prev[0]
		err     error
	)
	for j = len(cur) - 1; j >= 0; j-- {
		if c.dead(j) {
			cur[j] = 0
			continue
		}
		absent = 0
		if j+1 < len(prev) {
			absent = prev[j+1]
		}
		if cur[j], err = addCounts(absent, present); err != nil {
			return err
		}
	}

	return nil
}

// seededCount reads the ending-in-absence count from the row holding
// Days-1 remaining days. Column 1 is absent when Constraint == 0.
func seededCount(c *Config, row []uint64) uint64 {
	if c.days == 0 || len(row) < 2 {
		return 0
	}

	return row[1]
}

// Table returns the full (Days+1)×(Constraint+1) table dp, where dp[i][j]
// counts the ways to complete i remaining days with incoming streak j.
//
// Errors: ErrNilConfig, ErrOverflow.
//
// Complexity: O(Days·Constraint) time and memory; on ErrOverflow only the
// rows filled so far have been allocated.
func Table(cfg *Config) ([][]uint64, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	// Rows are allocated as they are filled, so an overflow near the top of
	// a long span returns before the rest of the table exists.
	width := cfg.constraint + 1
	dp := [][]uint64{make([]uint64, width)}
	seedRow(cfg, dp[0])

	var (
		i   int
		row []uint64
	)
	for i = 1; i <= cfg.days; i++ {
		row = make([]uint64, width)
		if err := fillRow(cfg, dp[i-1], row); err != nil {
			return nil, err
		}
		dp = append(dp, row)
	}

	return dp, nil
}

// SolveTabulation computes the Result from the full table.
//
// Errors: ErrNilConfig, ErrOverflow.
//
// Complexity: O(Days·Constraint) time and memory.
func SolveTabulation(cfg *Config) (Result, error) {
	dp, err := Table(cfg)
	if err != nil {
		return Result{}, err
	}

	res := Result{Total: dp[cfg.days][0]}
	if cfg.days > 0 {
		res.EndingInAbsence = seededCount(cfg, dp[cfg.days-1])
	}

	return res, nil
}

// SolveTwoRows computes the same Result as SolveTabulation keeping only two
// rows. Step i always writes rows[i%2] and reads rows[(i-1)%2]; once the
// loop ends, rows[Days%2] holds row Days and rows[(Days-1)%2] still holds
// row Days-1, which carries the seeded count.
//
// Errors: ErrNilConfig, ErrOverflow.
//
// Complexity: O(Days·Constraint) time, O(Constraint) memory.
func SolveTwoRows(cfg *Config) (Result, error) {
	if cfg == nil {
		return Result{}, ErrNilConfig
	}

	width := cfg.constraint + 1
	rows := [2][]uint64{make([]uint64, width), make([]uint64, width)}
	seedRow(cfg, rows[0])

	var (
		i          int
		curr, prev int
	)
	for i = 1; i <= cfg.days; i++ {
		curr, prev = i%2, (i-1)%2
		if err := fillRow(cfg, rows[prev], rows[curr]); err != nil {
			return Result{}, err
		}
	}

	res := Result{Total: rows[cfg.days%2][0]}
	if cfg.days > 0 {
		res.EndingInAbsence = seededCount(cfg, rows[(cfg.days-1)%2])
	}

	return res, nil
}
