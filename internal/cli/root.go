// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface for the streak counter.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/streak/attendance"
)

// ErrInvalidDays indicates that the number of days is missing or not an integer.
var ErrInvalidDays = errors.New("cli: days must be an integer")

// ErrUnknownFormat indicates an unsupported --format value.
var ErrUnknownFormat = errors.New("cli: unknown output format")

// prompt is shown when days is not given as an argument.
const prompt = "Enter number of days to attend classes: "

// options holds the parsed flags shared by the commands.
type options struct {
	constraint int
	strategy   string
	format     string
	verbose    bool
}

// app carries the I/O endpoints of one command tree.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	opts   options
	log    *slog.Logger
}

// NewRootCommand builds the command tree reading days from in, writing
// reports to out and prompts and logs to errOut.
func NewRootCommand(in io.Reader, out, errOut io.Writer, defaults Defaults) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "streak [days]",
		Short: "Count attendance records that avoid a run of consecutive absences.",
		Long: `streak counts the present/absent records of a term that never miss ` +
			`--constraint or more consecutive days, and how many of them miss the ` +
			`last day. It prints "<ending in absence>/<total>" once per strategy ` +
			`(memoized, tabulation, two-rows).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = newLogger(a.errOut, a.opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&a.opts.constraint, "constraint", "c", defaults.Constraint,
		"consecutive absences that invalidate a record (env "+EnvConstraint+")")
	flags.StringVarP(&a.opts.format, "format", "f", FormatText, "output format: text|yaml")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable debug logging on stderr")
	rootCmd.Flags().StringVarP(&a.opts.strategy, "strategy", "s", defaults.Strategy,
		"strategy to run: all|memoized|tabulation|two-rows (env "+EnvStrategy+")")

	rootCmd.AddCommand(a.newTableCommand())

	return rootCmd
}

// Execute adds all child commands to the root command and runs it against
// the process streams. It exits with status 1 on any error.
func Execute() {
	defaults, err := LoadDefaults(DefaultEnvFile)
	if err != nil {
		newLogger(os.Stderr, false).Error("load defaults", slog.Any("error", err))
		os.Exit(1)
	}

	rootCmd := NewRootCommand(os.Stdin, os.Stdout, os.Stderr, defaults)
	if err = rootCmd.Execute(); err != nil {
		newLogger(os.Stderr, false).Error("streak failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// newLogger returns a text slog logger on w; verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// runSolve evaluates the selected strategies and prints one report per
// strategy. Nothing is printed unless every strategy succeeded.
func (a *app) runSolve(args []string) error {
	if err := checkFormat(a.opts.format); err != nil {
		return err
	}
	s, all, err := parseSelection(a.opts.strategy)
	if err != nil {
		return err
	}
	cfg, err := a.config(args)
	if err != nil {
		return err
	}

	var reports []attendance.Report
	if all {
		if reports, err = attendance.SolveAll(cfg); err != nil {
			return err
		}
	} else {
		res, err := attendance.Solve(cfg, s)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
		reports = []attendance.Report{{Strategy: s, Result: res}}
	}
	for _, r := range reports {
		a.log.Debug("strategy finished",
			slog.String("strategy", r.Strategy.Name()),
			slog.Uint64("ending_in_absence", r.Result.EndingInAbsence),
			slog.Uint64("total", r.Result.Total))
	}

	return render(a.out, a.opts.format, cfg, reports)
}

// config resolves days (argument or prompt) and validates it together with
// the constraint flag.
func (a *app) config(args []string) (*attendance.Config, error) {
	var (
		raw string
		err error
	)
	if len(args) == 1 {
		raw = args[0]
	} else if raw, err = a.readDays(); err != nil {
		return nil, err
	}

	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", raw, ErrInvalidDays)
	}

	cfg, err := attendance.NewConfig(days, a.opts.constraint)
	if err != nil {
		return nil, err
	}
	a.log.Debug("configuration", slog.Int("days", cfg.Days()), slog.Int("constraint", cfg.Constraint()))

	return cfg, nil
}

// readDays prompts on errOut and reads one line from in.
func (a *app) readDays() (string, error) {
	fmt.Fprint(a.errOut, prompt)

	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read days: %w", err)
	}
	if strings.TrimSpace(line) == "" {
		return "", fmt.Errorf("no input: %w", ErrInvalidDays)
	}

	return line, nil
}
