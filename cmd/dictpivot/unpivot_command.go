package main

import (
	"github.com/spf13/cobra"

	"dictpivot/internal/conversion"
)

func newUnpivotCommand(ctx *commandContext) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "unpivot <input> [output]",
		Short: "Convert {key:{lang:value}} back into {lang:{key:value}}",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConversion(cmd, ctx, &flags, args, conversion.DirectionUnpivot)
		},
	}
	flags.register(cmd)
	return cmd
}
