// SPDX-License-Identifier: MIT

package attendance_test

// Brute-force oracle shared by the tests. Day k of a sequence is bit k of
// mask; a set bit means absent.

// maxAbsentRun returns the longest run of set bits among the low days bits.
func maxAbsentRun(mask uint64, days int) int {
	var best, run, k int
	for k = 0; k < days; k++ {
		if mask&(1<<uint(k)) != 0 {
			run++
			if run > best {
				best = run
			}
			continue
		}
		run = 0
	}

	return best
}

// validMask reports whether the sequence avoids a run of constraint
// absences. Constraint 0 forbids absences outright.
func validMask(mask uint64, days, constraint int) bool {
	if constraint == 0 {
		return mask == 0
	}

	return maxAbsentRun(mask, days) < constraint
}

// bruteCounts enumerates all 2^days sequences and returns
//   - total:      valid sequences,
//   - lastAbsent: valid sequences whose final day is absent (direct filter),
//   - seeded:     valid sequences whose first day is absent, i.e. a forced
//     absence followed by days-1 free decisions.
func bruteCounts(days, constraint int) (total, lastAbsent, seeded uint64) {
	var mask uint64
	for mask = 0; mask < 1<<uint(days); mask++ {
		if !validMask(mask, days, constraint) {
			continue
		}
		total++
		if days == 0 {
			continue
		}
		if mask&(1<<uint(days-1)) != 0 {
			lastAbsent++
		}
		if mask&1 != 0 {
			seeded++
		}
	}

	return total, lastAbsent, seeded
}
