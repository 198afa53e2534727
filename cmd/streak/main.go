// SPDX-License-Identifier: MIT

// Command streak prints, for a term of N days, how many attendance records
// avoid a forbidden run of consecutive absences and how many of those miss
// the final day.
package main

import "github.com/katalvlaran/streak/internal/cli"

func main() {
	cli.Execute()
}
