package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"tabhash/internal/dataset"
	"tabhash/internal/logging"
	"tabhash/internal/profile"
	"tabhash/internal/table"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var previewRows int

	cmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: "Show how a dataset loads without fingerprinting it",
		Long: `Load a dataset and print the loader's view of it: detected format,
delimiter and decimal separator for delimited files, a per-column
profile, and a preview of the first rows. Nothing is canonicalized, so
the preview shows values as loaded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("rows") {
				previewRows = cfg.Preview.Rows
			}

			tbl, info, err := dataset.Load(args[0], dataset.Options{
				Logger: logging.NewComponentLogger(logger, "dataset"),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printLoadSummary(out, tbl, info)

			profiles, err := profile.Table(tbl)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderProfiles(profiles))

			if tbl.NumRows() > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderPreview(tbl, previewRows))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&previewRows, "rows", 0, "number of preview rows (default from config)")

	return cmd
}

func printLoadSummary(out io.Writer, tbl *table.Table, info *dataset.LoadInfo) {
	format := string(info.Format)
	if info.Guessed {
		format += " (guessed)"
	}
	fmt.Fprintf(out, "Path:    %s\n", info.Path)
	fmt.Fprintf(out, "Format:  %s\n", format)
	fmt.Fprintf(out, "Rows:    %d\n", tbl.NumRows())
	fmt.Fprintf(out, "Columns: %d\n", tbl.NumColumns())

	if info.Format == dataset.FormatDelimited {
		delimiter := fmt.Sprintf("%q", info.Delimiter)
		if info.DelimiterFallback {
			delimiter += " (assumed)"
		}
		decimal := fmt.Sprintf("%q", info.Decimal)
		if info.DecimalFallback {
			decimal += " (assumed)"
		}
		fmt.Fprintf(out, "Delimiter: %s\n", delimiter)
		fmt.Fprintf(out, "Decimal:   %s\n", decimal)
	}
}

func renderProfiles(profiles []profile.ColumnProfile) string {
	headers := []string{"Column", "Kind", "Non-null", "Distinct", "Min", "Max", "Mean", "Median", "StdDev"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		row := []string{
			p.Name,
			p.Kind.String(),
			strconv.Itoa(p.NonNull),
			strconv.Itoa(p.Distinct),
			"", "", "", "", "",
		}
		if p.Numeric != nil {
			row[4] = formatStat(p.Numeric.Min)
			row[5] = formatStat(p.Numeric.Max)
			row[6] = formatStat(p.Numeric.Mean)
			row[7] = formatStat(p.Numeric.Median)
			row[8] = formatStat(p.Numeric.StdDev)
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows, aligns)
}

func renderPreview(tbl *table.Table, limit int) string {
	headers := tbl.ColumnNames()
	aligns := make([]columnAlignment, len(headers))
	for i, col := range tbl.Columns() {
		if col.Kind() == table.KindNumber {
			aligns[i] = alignRight
		}
	}

	count := tbl.NumRows()
	if limit > 0 && limit < count {
		count = limit
	}
	rows := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		cells := tbl.Row(i)
		row := make([]string, len(cells))
		for j, cell := range cells {
			row[j] = cell.String()
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows, aligns)
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
