// Package index implements the sidecar index file format: saving a sorted
// list of [start, end) byte ranges, and reloading it by batching
// consecutive ranges into positional-read-sized slabs that a worker pool
// parses in parallel. Ported from
// original_source/src/mbox-index.c's mboxIdxSave/mboxIdxLoad.
package index

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/zostay/go-mbox/record"
)

// flushSize mirrors the original's BUFSIZ-triggered flush: the internal
// buffer is flushed to disk when its length after an append is an exact
// multiple of this size, not on every append; whatever remains is flushed
// once at the end.
const flushSize = 8192

// Save writes records, sorted ascending by Start, to path as
// "{start} {end}\n" lines. The file is strictly ASCII and re-entrant:
// concatenating two valid index files and re-sorting yields a valid
// index. An empty records slice still creates path, truncated to zero
// bytes: an empty index is a zero-byte file, not a missing one.
func Save(path string, records []*record.MessageRecord) error {
	sorted := make([]*record.MessageRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("index: open %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	var fileOffset int64

	flush := func() error {
		if buf.Len() == 0 {
			return nil
		}
		n, err := f.WriteAt(buf.Bytes(), fileOffset)
		if err != nil {
			return fmt.Errorf("index: write %s: %w", path, err)
		}
		if err := f.Sync(); err != nil {
			return fmt.Errorf("index: fsync %s: %w", path, err)
		}
		fileOffset += int64(n)
		buf.Reset()
		return nil
	}

	for _, r := range sorted {
		fmt.Fprintf(&buf, "%d %d\n", r.Start, r.End)
		if buf.Len()%flushSize == 0 {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	return flush()
}
