package main

import (
	"github.com/spf13/cobra"

	"dictpivot/internal/conversion"
)

func newPivotCommand(ctx *commandContext) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "pivot <input> [output]",
		Short: "Convert {lang:{key:value}} into {key:{lang:value}}",
		Long: `Convert a language-major dictionary into a key-major one.

Every key found in any language pack becomes a top-level entry holding one
value per output language. Missing translations are filled with "". Use "-"
as input to read stdin; output defaults to stdout.`,
		Example: `  dictpivot pivot locales.json pivoted.json
  dictpivot pivot --langs ja,en --sort locales.json
  cat locales.yaml | dictpivot pivot --input-format yaml -`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConversion(cmd, ctx, &flags, args, conversion.DirectionPivot)
		},
	}
	flags.register(cmd)
	return cmd
}
