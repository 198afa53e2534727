// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/streak/attendance"
)

const (
	// EnvConstraint overrides the default streak constraint.
	EnvConstraint = "STREAK_CONSTRAINT"

	// EnvStrategy overrides the default strategy selection.
	EnvStrategy = "STREAK_STRATEGY"

	// DefaultEnvFile is read when present; a missing file is not an error.
	DefaultEnvFile = ".env"

	// strategyAll selects every strategy.
	strategyAll = "all"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Defaults are the flag defaults after the environment has been applied.
type Defaults struct {
	Constraint int
	Strategy   string
}

// LoadDefaults resolves flag defaults. Precedence, highest first: the
// process environment, the env file at path, the built-in defaults.
func LoadDefaults(path string) (Defaults, error) {
	d := Defaults{
		Constraint: attendance.DefaultConstraint,
		Strategy:   strategyAll,
	}

	fileEnv := map[string]string{}
	if path != "" {
		read, err := godotenv.Read(path)
		switch {
		case err == nil:
			fileEnv = read
		case errors.Is(err, fs.ErrNotExist):
			// optional
		default:
			return Defaults{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]

		return v, ok
	}

	if v, ok := lookup(EnvConstraint); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Defaults{}, fmt.Errorf("%s=%q: %w", EnvConstraint, v, err)
		}
		d.Constraint = n
	}
	if v, ok := lookup(EnvStrategy); ok {
		d.Strategy = strings.TrimSpace(v)
	}

	return d, nil
}

// parseSelection maps the --strategy value to a single strategy, or
// reports all == true for "all".
func parseSelection(name string) (s attendance.Strategy, all bool, err error) {
	if strings.EqualFold(strings.TrimSpace(name), strategyAll) {
		return 0, true, nil
	}
	if s, err = attendance.ParseStrategy(name); err != nil {
		return 0, false, err
	}

	return s, false, nil
}
