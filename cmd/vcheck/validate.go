package main

// validators is a composable runtime validation library for Go.
// Copyright (C) 2023 John Dudmesh

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	v "github.com/jdudmesh/validators"
	"github.com/jdudmesh/validators/decode"
	"github.com/jdudmesh/validators/internal/events"
)

var errInvalidDocuments = errors.New("invalid documents")

const (
	outputText = "text"
	outputJSON = "json"
)

type report struct {
	Source string         `json:"source"`
	Valid  bool           `json:"valid"`
	Type   string         `json:"type,omitempty"`
	ID     string         `json:"id,omitempty"`
	Issues []v.Issue      `json:"issues,omitempty"`
	Detail map[string]any `json:"detail,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [files...|-]",
		Short: "Validate event documents",
		Long:  `Reads each file (or stdin for "-" or no arguments) as a JSON or YAML event and reports every validation issue.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatName, _ := cmd.Flags().GetString("format")
			format, err := decode.ParseFormat(formatName)
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")
			if output != outputText && output != outputJSON {
				return fmt.Errorf("unknown output %q: must be %q or %q", output, outputText, outputJSON)
			}

			if len(args) == 0 {
				args = []string{"-"}
			}

			dispatcher := events.NewDispatcher(nil, events.WithLogger(a.logger))
			reports := make([]report, 0, len(args))
			for _, source := range args {
				reports = append(reports, a.check(dispatcher, cmd.InOrStdin(), source, format))
			}

			if output == outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(reports); err != nil {
					return err
				}
			} else {
				printReports(cmd.OutOrStdout(), reports)
			}

			failed := 0
			for _, r := range reports {
				if !r.Valid {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d failed", errInvalidDocuments, failed, len(reports))
			}
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "auto", "Input format (auto, json, yaml)")
	cmd.Flags().StringP("output", "o", outputText, "Output format (text, json)")

	return cmd
}

func (a *app) check(dispatcher *events.Dispatcher, stdin io.Reader, source string, format decode.Format) report {
	r := report{Source: source}

	raw, err := a.read(stdin, source, format)
	if err != nil {
		r.Error = err.Error()
		return r
	}

	event, err := dispatcher.Validate(raw)
	if err != nil {
		var verr v.ValidationError
		if errors.As(err, &verr) {
			r.Issues = v.Issues(verr)
			r.Detail = v.Describe(verr)
		}
		r.Error = err.Error()
		a.logger.Debug("document rejected", "source", source, "error", err)
		return r
	}

	r.Valid = true
	r.Type = event.EventType()
	r.ID = event.EventID().String()
	return r
}

func (a *app) read(stdin io.Reader, source string, format decode.Format) (any, error) {
	if source == "-" {
		return decode.Reader(stdin, format)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if format == decode.FormatAuto {
		format = decode.FormatOf(source)
	}
	return decode.Reader(f, format)
}

func printReports(w io.Writer, reports []report) {
	okColor := color.New(color.FgHiGreen, color.Bold)
	failColor := color.New(color.FgHiRed, color.Bold)
	pathColor := color.New(color.FgHiYellow)
	kindColor := color.New(color.FgHiCyan)

	for _, r := range reports {
		if r.Valid {
			okColor.Fprint(w, "ok")
			fmt.Fprintf(w, "   %s (%s %s)\n", r.Source, r.Type, r.ID)
			continue
		}

		failColor.Fprint(w, "FAIL")
		fmt.Fprintf(w, " %s\n", r.Source)
		if len(r.Issues) == 0 {
			fmt.Fprintf(w, "     %s\n", r.Error)
			continue
		}
		for _, issue := range r.Issues {
			fmt.Fprint(w, "     ")
			if issue.Path != "" {
				pathColor.Fprintf(w, "%s: ", issue.Path)
			}
			fmt.Fprintf(w, "%s ", issue.Message)
			kindColor.Fprintf(w, "[%s]\n", issue.Kind)
		}
	}
}
