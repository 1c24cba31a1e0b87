package index

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/zostay/go-mbox/header"
	"github.com/zostay/go-mbox/internal/ioplane"
	"github.com/zostay/go-mbox/internal/region"
	"github.com/zostay/go-mbox/internal/resultlist"
	"github.com/zostay/go-mbox/internal/workerpool"
	"github.com/zostay/go-mbox/record"
)

type offsetPair struct {
	Start int64
	End   int64
}

// Load reads idxPath, groups its (start, end) pairs into batches whose
// total spanned range is at most region.IOReadSize, and parses each batch
// in parallel with a pool of threadCount workers: one positional read per
// batch against mboxPath, then a windowed re-parse of each message from
// the in-memory slab. A missing index file is not an error; it yields an
// empty result, matching the original loader's behavior when there is
// nothing to resurrect yet.
func Load(idxPath, mboxPath string, threadCount int) ([]*record.MessageRecord, error) {
	data, err := os.ReadFile(idxPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("index: read %s: %w", idxPath, err)
	}

	pairs, err := parseIndexFile(data)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, nil
	}

	backend, err := ioplane.OpenFile(mboxPath)
	if err != nil {
		return nil, fmt.Errorf("index: open %s: %w", mboxPath, err)
	}
	defer backend.Close()

	return loadFromBackend(backend, pairs, threadCount)
}

func loadFromBackend(backend ioplane.Backend, pairs []offsetPair, threadCount int) ([]*record.MessageRecord, error) {
	batches := batchPairs(pairs, region.IOReadSize)

	results := resultlist.New()
	pool := workerpool.New(threadCount)

	var mu sync.Mutex
	var firstErr error

	for _, batch := range batches {
		batch := batch
		pool.Enqueue(func() {
			if err := loadBatch(backend, batch, results); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
	}

	pool.Wait()
	pool.Close()

	return results.Snapshot(), firstErr
}

func loadBatch(backend ioplane.Backend, batch []offsetPair, results *resultlist.List) error {
	first := batch[0]
	last := batch[len(batch)-1]
	size := last.End - first.Start

	slab := make([]byte, size)
	if _, err := backend.ReadAt(slab, first.Start); err != nil && err != io.EOF {
		return fmt.Errorf("index: batch read at %d: %w", first.Start, err)
	}

	for _, p := range batch {
		window := slab[p.Start-first.Start : p.End-first.Start]
		h, bodyOff := header.Parse(window)
		body := window[bodyOff:]
		results.Append(record.Assemble(h, body, p.Start, p.End))
	}

	return nil
}

// batchPairs groups consecutive pairs so that each batch's spanned range
// (last.End - first.Start) is at most budget bytes. The last batch may be
// shorter.
func batchPairs(pairs []offsetPair, budget int64) [][]offsetPair {
	var batches [][]offsetPair
	var cur []offsetPair

	for _, p := range pairs {
		if len(cur) == 0 {
			cur = append(cur, p)
			continue
		}
		if p.End-cur[0].Start <= budget {
			cur = append(cur, p)
			continue
		}
		batches = append(batches, cur)
		cur = []offsetPair{p}
	}
	if len(cur) > 0 {
		batches = append(batches, cur)
	}
	return batches
}

func parseIndexFile(data []byte) ([]offsetPair, error) {
	var pairs []offsetPair
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		fields := bytes.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("index: malformed line %q", line)
		}
		start, err := strconv.ParseInt(string(fields[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("index: bad start offset %q: %w", fields[0], err)
		}
		end, err := strconv.ParseInt(string(fields[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("index: bad end offset %q: %w", fields[1], err)
		}
		pairs = append(pairs, offsetPair{Start: start, End: end})
	}
	return pairs, nil
}
