package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallcolle/internal/build"
	"wallcolle/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	var variantFlag string

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Check availability of the external image tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			variant, err := build.ParseVariant(variantFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			requirements := deps.For(cfg, variant == build.VariantRetro)
			if len(requirements) == 0 {
				fmt.Fprintln(out, "All image transforms are built in; no external tools required.")
				return nil
			}

			var missing bool
			rows := make([][]string, 0, len(requirements))
			for _, status := range deps.CheckBinaries(requirements) {
				detail := status.Detail
				if detail == "" {
					detail = status.Description
				}
				rows = append(rows, []string{
					status.Name,
					status.Command,
					yesNo(!status.Optional),
					yesNo(status.Available),
					detail,
				})
				if !status.Available && !status.Optional {
					missing = true
				}
			}
			fmt.Fprintln(out, renderTable([]string{"Tool", "Command", "Required", "Available", "Detail"}, rows, nil))

			if missing {
				return fmt.Errorf("missing required tools for the %s variant", variant)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&variantFlag, "variant", "retro", "Variant to check requirements for: normal or retro")
	return cmd
}
