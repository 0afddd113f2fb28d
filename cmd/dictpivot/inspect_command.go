package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dictpivot/internal/document"
	"dictpivot/internal/fileutil"
	"dictpivot/internal/language"
	"dictpivot/internal/pivot"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var inputFormat string
	var languages string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Report language coverage of a language-major dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			override := cfg.Pivot.Languages
			if cmd.Flags().Changed("langs") {
				override = language.ParseList(languages)
			}

			summary, err := inspectDictionary(cmd, strings.TrimSpace(args[0]), inputFormat, override)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, summary)
			}
			renderSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputFormat, "input-format", "", "Input format (json, yaml); defaults to the input extension")
	cmd.Flags().StringVarP(&languages, "langs", "l", "", "Comma-separated languages to report on")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func inspectDictionary(cmd *cobra.Command, path, inputFormat string, override []string) (pivot.Summary, error) {
	format, err := document.ParseFormat(inputFormat)
	if err != nil {
		return pivot.Summary{}, fmt.Errorf("--input-format: %w", err)
	}
	if format == "" {
		format = document.DetectFormat(path, document.FormatJSON)
	}

	data, err := fileutil.ReadInput(path, cmd.InOrStdin())
	if err != nil {
		return pivot.Summary{}, fmt.Errorf("read input: %w", err)
	}
	doc, err := document.Decode(data, format)
	if err != nil {
		return pivot.Summary{}, fmt.Errorf("decode input: %w", err)
	}
	raw, err := pivot.Classify(doc)
	if err != nil {
		return pivot.Summary{}, fmt.Errorf("inspect: %w", err)
	}
	return raw.Describe(override), nil
}

var summaryColumns = []tableColumn{
	{header: "Code"},
	{header: "Language"},
	{header: "Keys", align: alignRight},
	{header: "Missing", align: alignRight},
	{header: "Coverage", align: alignRight},
}

func renderSummary(cmd *cobra.Command, summary pivot.Summary) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	rows := make([][]string, 0, len(summary.Languages))
	for _, stats := range summary.Languages {
		rows = append(rows, []string{
			stats.Language,
			language.DisplayName(stats.Language),
			strconv.Itoa(stats.Keys),
			strconv.Itoa(stats.Missing),
			formatCoverage(stats.Coverage(summary.TotalKeys)),
		})
	}
	if len(rows) > 0 {
		fmt.Fprintln(out, renderTable(summaryColumns, rows))
		fmt.Fprintln(out)
	}

	for _, line := range renderSectionHeader("Coverage", colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, renderStatusLine("Keys", statusInfo, strconv.Itoa(summary.TotalKeys), colorize))
	if len(summary.Languages) == 0 {
		fmt.Fprintln(out, renderStatusLine("Languages", statusError, "no language packs found", colorize))
	}
	for _, stats := range summary.Languages {
		kind, message := coverageStatus(stats)
		fmt.Fprintln(out, renderStatusLine(stats.Language, kind, message, colorize))
	}
	if len(summary.Ignored) > 0 {
		fmt.Fprintln(out, renderStatusLine("Ignored", statusWarn, strings.Join(summary.Ignored, ", "), colorize))
	}
}

func coverageStatus(stats pivot.LanguageStats) (statusKind, string) {
	switch {
	case !stats.Detected:
		return statusError, "no language pack; every value will be empty"
	case stats.Missing == 0:
		return statusOK, "complete"
	default:
		return statusWarn, fmt.Sprintf("%d missing", stats.Missing)
	}
}

func formatCoverage(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}
