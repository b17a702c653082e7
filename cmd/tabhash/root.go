package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "tabhash",
		Short: "Content fingerprints for tabular datasets",
		Long: "tabhash computes deterministic SHA-256 fingerprints of tabular files\n" +
			"(CSV and friends, Excel, JSON, XML, parquet, HTML tables). Content is\n" +
			"canonicalized before hashing, so formatting and column order never\n" +
			"change a fingerprint; row order matters only in order-dependent mode.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newFingerprintCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newCompareCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
