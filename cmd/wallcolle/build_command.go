package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"wallcolle/internal/build"
	"wallcolle/internal/logging"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var packPath string
	var dest string
	var variantFlag string
	var clean bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble a wallpaper pack into a destination tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			variant, err := build.ParseVariant(variantFlag)
			if err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			})
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			result, err := build.Run(runCtx, cfg, build.Options{
				PackPath: packPath,
				Dest:     dest,
				Variant:  variant,
				Clean:    clean,
			}, logger)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(result.Entries))
			for _, entry := range result.Entries {
				rows = append(rows, []string{entry.EntryName, entry.Artist, entry.Title, entry.License})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Entry", "Artist", "Title", "License"}, rows, nil))
			fmt.Fprintf(out, "Wrote %d entries for pack %s (%s variant) under %s\n",
				len(result.Entries), result.PackName, result.Variant, dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&packPath, "pack", "", "Path to the pack selection manifest")
	cmd.Flags().StringVar(&dest, "dest", "", "Destination root for the generated tree")
	cmd.Flags().StringVar(&variantFlag, "variant", "normal", "Pack variant: normal or retro")
	cmd.Flags().BoolVar(&clean, "clean", false, "Remove the destination root before building")
	_ = cmd.MarkFlagRequired("pack")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}
