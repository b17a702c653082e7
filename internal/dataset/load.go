package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tabhash/internal/logging"
	"tabhash/internal/table"
)

// Format names a decoder strategy.
type Format string

const (
	FormatDelimited Format = "delimited"
	FormatExcel     Format = "excel"
	FormatJSON      Format = "json"
	FormatXML       Format = "xml"
	FormatParquet   Format = "parquet"
	FormatHTML      Format = "html"
)

// ColumnInfo describes one loaded column for diagnostics.
type ColumnInfo struct {
	Name string
	Kind table.Kind
}

// LoadInfo describes how a file was decoded. The delimiter and decimal
// fields are meaningful only for FormatDelimited; their fallback flags
// report that sniffing found no confident signal and a default was used.
type LoadInfo struct {
	Path              string
	Format            Format
	Guessed           bool
	Delimiter         rune
	DelimiterFallback bool
	Decimal           rune
	DecimalFallback   bool
	Columns           []ColumnInfo
}

// Options configures Load.
type Options struct {
	// Logger receives decode diagnostics. Nil selects a no-op logger.
	Logger *slog.Logger
}

type decodeFunc func(path string) (*table.Table, *LoadInfo, error)

// guessOrder is the fixed sequence tried when the extension is unknown or
// its decoder failed. The order is part of the loader contract.
var guessOrder = []struct {
	format Format
	decode decodeFunc
}{
	{FormatDelimited, decodeDelimited},
	{FormatExcel, decodeExcel},
	{FormatJSON, decodeJSON},
	{FormatXML, decodeXML},
	{FormatParquet, decodeParquet},
	{FormatHTML, decodeHTML},
}

// Load reads the dataset at path into a table. Format selection is by
// extension first; when the extension is unknown or its decoder fails,
// every decoder is tried in guessOrder before giving up with
// ErrUnsupportedFormat.
func Load(path string, opts Options) (*table.Table, *LoadInfo, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if decode, format, ok := decoderForExtension(ext); ok {
		tbl, info, err := decode(path)
		if err == nil {
			finishInfo(info, path, tbl, false)
			logLoaded(logger, info, tbl)
			return tbl, info, nil
		}
		logger.Warn("extension decoder failed, guessing format",
			logging.String("path", path),
			logging.String("format", string(format)),
			logging.Error(err))
	} else if ext != "" {
		logger.Info("unknown file extension, guessing format",
			logging.String("path", path),
			logging.String("extension", ext))
	}

	return guess(path, logger)
}

func decoderForExtension(ext string) (decodeFunc, Format, bool) {
	switch ext {
	case ".csv", ".tsv", ".txt":
		return decodeDelimited, FormatDelimited, true
	case ".xlsx", ".xlsm", ".xls":
		return decodeExcel, FormatExcel, true
	case ".json":
		return decodeJSON, FormatJSON, true
	case ".xml":
		return decodeXML, FormatXML, true
	case ".parquet":
		return decodeParquet, FormatParquet, true
	case ".html", ".htm":
		return decodeHTML, FormatHTML, true
	default:
		return nil, "", false
	}
}

func guess(path string, logger *slog.Logger) (*table.Table, *LoadInfo, error) {
	for _, g := range guessOrder {
		tbl, info, err := g.decode(path)
		if err != nil {
			logger.Debug("format guess failed",
				logging.String("path", path),
				logging.String("format", string(g.format)),
				logging.Error(err))
			continue
		}
		finishInfo(info, path, tbl, true)
		logLoaded(logger, info, tbl)
		return tbl, info, nil
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

func finishInfo(info *LoadInfo, path string, tbl *table.Table, guessed bool) {
	info.Path = path
	info.Guessed = guessed
	info.Columns = make([]ColumnInfo, 0, tbl.NumColumns())
	for _, col := range tbl.Columns() {
		info.Columns = append(info.Columns, ColumnInfo{Name: col.Name, Kind: col.Kind()})
	}
}

func logLoaded(logger *slog.Logger, info *LoadInfo, tbl *table.Table) {
	attrs := []any{
		logging.String("path", info.Path),
		logging.String("format", string(info.Format)),
		logging.Int("rows", tbl.NumRows()),
		logging.Int("columns", tbl.NumColumns()),
		logging.Bool("guessed", info.Guessed),
	}
	if info.Format == FormatDelimited {
		attrs = append(attrs,
			logging.String("delimiter", string(info.Delimiter)),
			logging.String("decimal", string(info.Decimal)))
		if info.DelimiterFallback {
			attrs = append(attrs, logging.Bool("delimiter_fallback", true))
		}
		if info.DecimalFallback {
			attrs = append(attrs, logging.Bool("decimal_fallback", true))
		}
	}
	logger.Info("dataset loaded", attrs...)
	for _, col := range info.Columns {
		logger.Debug("column typed",
			logging.String("column", col.Name),
			logging.String("kind", col.Kind.String()))
	}
}
