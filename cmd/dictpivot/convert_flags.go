package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dictpivot/internal/config"
	"dictpivot/internal/conversion"
	"dictpivot/internal/document"
	"dictpivot/internal/fileutil"
	"dictpivot/internal/language"
)

// convertFlags holds the flags shared by pivot and unpivot. Unset flags fall
// back to the configuration file.
type convertFlags struct {
	languages   string
	sort        bool
	locale      string
	format      string
	inputFormat string
	indent      int
	output      string
}

func (f *convertFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.languages, "langs", "l", "", "Comma-separated output languages, in order")
	flags.BoolVarP(&f.sort, "sort", "s", false, "Sort keys and languages by collation order")
	flags.StringVar(&f.locale, "locale", "", "BCP 47 locale used for --sort collation")
	flags.StringVarP(&f.format, "format", "f", "", "Output format (json, yaml); defaults to the output extension")
	flags.StringVar(&f.inputFormat, "input-format", "", "Input format (json, yaml); defaults to the input extension")
	flags.IntVar(&f.indent, "indent", 0, "Spaces per indentation level (0 for compact JSON)")
	flags.StringVarP(&f.output, "output", "o", "", "Output file (default stdout)")
}

func (f *convertFlags) request(cmd *cobra.Command, cfg *config.Config, args []string, direction conversion.Direction) (conversion.Request, error) {
	req := conversion.Request{
		InputPath: strings.TrimSpace(args[0]),
		Direction: direction,
		Languages: cfg.Pivot.Languages,
		Sort:      cfg.Pivot.Sort,
		Locale:    cfg.Pivot.Locale,
		Encode: document.EncodeOptions{
			Indent:          cfg.Output.Indent,
			TrailingNewline: cfg.Output.TrailingNewline,
		},
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
	}

	output := strings.TrimSpace(f.output)
	if len(args) > 1 {
		if output != "" {
			return req, fmt.Errorf("output given both as argument and --output")
		}
		output = strings.TrimSpace(args[1])
	}
	req.OutputPath = output

	flags := cmd.Flags()
	if flags.Changed("langs") {
		req.Languages = language.ParseList(f.languages)
	}
	if flags.Changed("sort") {
		req.Sort = f.sort
	}
	if flags.Changed("locale") {
		req.Locale = strings.TrimSpace(f.locale)
	}
	if flags.Changed("indent") {
		if err := config.ValidateIndent(f.indent); err != nil {
			return req, fmt.Errorf("--indent %w", err)
		}
		req.Encode.Indent = f.indent
	}

	outFormat := cfg.Output.Format
	if flags.Changed("format") {
		outFormat = f.format
	}
	parsed, err := document.ParseFormat(outFormat)
	if err != nil {
		return req, fmt.Errorf("--format: %w", err)
	}
	req.OutputFormat = parsed

	parsed, err = document.ParseFormat(f.inputFormat)
	if err != nil {
		return req, fmt.Errorf("--input-format: %w", err)
	}
	req.InputFormat = parsed

	if req.OutputFormat == "" && fileutil.IsStdio(req.OutputPath) && req.InputFormat != "" {
		req.OutputFormat = req.InputFormat
	}
	return req, nil
}

func runConversion(cmd *cobra.Command, ctx *commandContext, flags *convertFlags, args []string, direction conversion.Direction) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.logger(cmd)
	if err != nil {
		return err
	}
	req, err := flags.request(cmd, cfg, args, direction)
	if err != nil {
		return err
	}

	result, err := conversion.Run(cmd.Context(), req, logger)
	if err != nil {
		return err
	}
	if !fileutil.IsStdio(result.OutputPath) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d keys in %d languages to %s\n", result.Keys, len(result.Languages), result.OutputPath)
	}
	return nil
}
