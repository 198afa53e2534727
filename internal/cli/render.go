// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/streak/attendance"
)

// linePrefix starts every text report line.
const linePrefix = "Probability of missing graduation ceremony"

// yamlReport is the serialized shape of one strategy's result.
type yamlReport struct {
	Strategy        string  `yaml:"strategy"`
	EndingInAbsence uint64  `yaml:"ending_in_absence"`
	Total           uint64  `yaml:"total"`
	Ratio           float64 `yaml:"ratio"`
}

// yamlDocument is the top-level YAML output.
type yamlDocument struct {
	Days       int          `yaml:"days"`
	Constraint int          `yaml:"constraint"`
	Results    []yamlReport `yaml:"results"`
}

// checkFormat rejects unsupported --format values before any work is done.
func checkFormat(format string) error {
	switch format {
	case FormatText, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// render writes reports to w in the requested format. The whole output is
// built in memory first so that an encoding error never leaves a partial
// report behind.
func render(w io.Writer, format string, cfg *attendance.Config, reports []attendance.Report) error {
	var buf bytes.Buffer

	switch format {
	case FormatText:
		for _, r := range reports {
			fmt.Fprintf(&buf, "%s - [%s]: %s\n", linePrefix, r.Strategy, r.Result)
		}
	case FormatYAML:
		doc := yamlDocument{
			Days:       cfg.Days(),
			Constraint: cfg.Constraint(),
			Results:    make([]yamlReport, 0, len(reports)),
		}
		for _, r := range reports {
			doc.Results = append(doc.Results, yamlReport{
				Strategy:        r.Strategy.Name(),
				EndingInAbsence: r.Result.EndingInAbsence,
				Total:           r.Result.Total,
				Ratio:           r.Result.Ratio(),
			})
		}
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	_, err := buf.WriteTo(w)

	return err
}
