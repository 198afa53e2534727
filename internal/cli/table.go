// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/streak/attendance"
)

// tableDocument is the YAML shape of a printed table.
type tableDocument struct {
	Days       int        `yaml:"days"`
	Constraint int        `yaml:"constraint"`
	Rows       [][]uint64 `yaml:"rows,flow"`
}

func (a *app) newTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table [days]",
		Short: "Print the full tabulation (row = remaining days, column = streak)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTable(args)
		},
	}
}

// runTable prints attendance.Table for the configured span.
func (a *app) runTable(args []string) error {
	if err := checkFormat(a.opts.format); err != nil {
		return err
	}
	cfg, err := a.config(args)
	if err != nil {
		return err
	}

	dp, err := attendance.Table(cfg)
	if err != nil {
		return err
	}
	a.log.Debug("table built", slog.Int("rows", len(dp)), slog.Int("cols", cfg.Constraint()+1))

	var buf bytes.Buffer
	if a.opts.format == FormatYAML {
		out, err := yaml.Marshal(tableDocument{Days: cfg.Days(), Constraint: cfg.Constraint(), Rows: dp})
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		buf.Write(out)
	} else {
		for i, row := range dp {
			fmt.Fprintf(&buf, "%d %v\n", i, row)
		}
	}
	_, err = buf.WriteTo(a.out)

	return err
}
