package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tabhash/internal/canonical"
	"tabhash/internal/dataset"
	"tabhash/internal/fingerprint"
	"tabhash/internal/logging"
)

func newFingerprintCommand(ctx *commandContext) *cobra.Command {
	var (
		modeFlag string
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "fingerprint [path]",
		Short: "Compute a content fingerprint for a dataset",
		Long: `Load a dataset, canonicalize it, and print its SHA-256 fingerprint.

The order-dependent mode hashes rows in file order. The
order-independent mode hashes each row separately and combines the row
digests, so reordering rows does not change the result. When --mode or
the path argument is missing and stdin is a terminal, the command
prompts for the missing pieces.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			interactive := isInteractive(cmd.InOrStdin())
			var stdin *bufio.Reader
			if interactive {
				stdin = bufio.NewReader(cmd.InOrStdin())
			}

			var mode fingerprint.Mode
			switch {
			case modeFlag != "":
				mode, err = fingerprint.ParseMode(modeFlag)
				if err != nil {
					return err
				}
			case interactive:
				mode, err = promptMode(stdin, cmd.OutOrStdout())
				if err != nil {
					return err
				}
			default:
				return errors.New("--mode is required when stdin is not a terminal")
			}

			var path string
			switch {
			case len(args) == 1:
				path = args[0]
			case interactive:
				path, err = promptPath(stdin, cmd.OutOrStdout())
				if err != nil {
					return err
				}
			default:
				return errors.New("dataset path is required")
			}

			if !cmd.Flags().Changed("workers") {
				workers = cfg.Fingerprint.Workers
			}

			logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
			digest, err := computeDigest(path, mode, workers, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s fingerprint: %s\n", modeLabel(mode), digest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "fingerprint mode: ordered (1) or unordered (2)")
	cmd.Flags().IntVar(&workers, "workers", 0, "row hashing workers for unordered mode (0 means all CPUs)")

	return cmd
}

// computeDigest runs the pipeline for one file: load, canonicalize, hash.
func computeDigest(path string, mode fingerprint.Mode, workers int, logger *slog.Logger) (string, error) {
	tbl, _, err := dataset.Load(path, dataset.Options{
		Logger: logging.NewComponentLogger(logger, "dataset"),
	})
	if err != nil {
		return "", err
	}

	for _, d := range canonical.Apply(tbl) {
		logger.Debug("datetime column normalized",
			logging.String("column", d.Column),
			logging.String("method", d.Method.String()),
			logging.String("layout", d.Layout))
	}

	digest := fingerprint.Compute(tbl, mode, workers)
	logger.Info("fingerprint computed",
		logging.String("path", path),
		logging.String("mode", mode.String()),
		logging.String("digest", digest))
	return digest, nil
}

func modeLabel(mode fingerprint.Mode) string {
	if mode == fingerprint.ModeUnordered {
		return "Order-independent"
	}
	return "Order-dependent"
}
