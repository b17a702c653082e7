package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"tabhash/internal/table"
)

// Compute dispatches to the strategy selected by mode. workers only
// affects ModeUnordered; see Unordered.
func Compute(t *table.Table, mode Mode, workers int) string {
	if mode == ModeUnordered {
		return Unordered(t, workers)
	}
	return Ordered(t)
}

// Ordered returns the order-dependent digest of a canonical table: rows are
// serialized row-major with comma-joined fields and a trailing newline per
// record, and the whole byte string is hashed once.
func Ordered(t *table.Table) string {
	h := sha256.New()
	for i := 0; i < t.NumRows(); i++ {
		h.Write([]byte(rowString(t, i)))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Unordered returns the order-independent digest of a canonical table. Each
// row string is hashed to a hex digest, the digests are sorted
// lexicographically and concatenated without separator, and the
// concatenation is hashed again. Rows are hashed in contiguous chunks
// across at most workers goroutines; values below one select GOMAXPROCS.
func Unordered(t *table.Table, workers int) string {
	rows := t.NumRows()
	digests := make([]string, rows)

	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > rows {
		workers = rows
	}
	if rows > 0 {
		chunk := (rows + workers - 1) / workers
		var g errgroup.Group
		for start := 0; start < rows; start += chunk {
			end := start + chunk
			if end > rows {
				end = rows
			}
			g.Go(func() error {
				for i := start; i < end; i++ {
					sum := sha256.Sum256([]byte(rowString(t, i)))
					digests[i] = hex.EncodeToString(sum[:])
				}
				return nil
			})
		}
		// Row hashing cannot fail; Wait only joins the pool.
		_ = g.Wait()
	}

	sort.Strings(digests)

	h := sha256.New()
	for _, digest := range digests {
		h.Write([]byte(digest))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func rowString(t *table.Table, row int) string {
	fields := make([]string, t.NumColumns())
	for j, col := range t.Columns() {
		fields[j] = col.Cells[row].String()
	}
	return strings.Join(fields, ",")
}
