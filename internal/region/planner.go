package region

import (
	"context"
	"io"

	"golang.org/x/sync/semaphore"

	"github.com/zostay/go-mbox/internal/ioplane"
)

// IOReadSize is the chunk size used both for backward boundary-alignment
// reads and for the forward framing reads the I/O workers perform. It
// matches the read budget the index loader batches its positional reads
// against.
const IOReadSize = 300_000

// Delim is the canonical mbox record delimiter. The leading newline
// belongs to the previous message; aligning a region's start to the byte
// right after this delimiter's newline is what makes every region start
// at a true "From " line. The framer package reuses this exact sequence
// to find the end of each message within a region.
var Delim = []byte("\nFrom ")

// Plan divides a file of the given size into t disjoint regions, each
// aligned so that StartOffset is either 0 or points at the "F" of a
// "\nFrom " sequence. Alignment for each region is performed concurrently;
// maxConcurrency bounds how many alignment scans run at once (0 means t).
// budget sets the backward-read jump size (0 means IOReadSize); a caller
// overriding the chunk size via mbox.WithChunkSize passes it through here
// so alignment and framing always agree on one budget.
func Plan(ctx context.Context, backend ioplane.Backend, fileSize int64, t int, budget int64, maxConcurrency int) ([]*Region, error) {
	if t <= 0 {
		t = 1
	}
	if budget <= 0 {
		budget = IOReadSize
	}
	if maxConcurrency <= 0 {
		maxConcurrency = t
	}

	starts := make([]int64, t)
	errs := make([]error, t)

	sem := semaphore.NewWeighted(int64(maxConcurrency))
	done := make(chan int, t)

	for i := 0; i < t; i++ {
		i := i
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		go func() {
			defer sem.Release(1)
			defer func() { done <- i }()

			nominal := int64(i) * (fileSize / int64(t))
			if i == 0 {
				starts[i] = 0
				return
			}
			start, err := alignStart(backend, nominal, budget)
			if err != nil {
				errs[i] = err
				return
			}
			starts[i] = start
		}()
	}
	for i := 0; i < t; i++ {
		<-done
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	regions := make([]*Region, 0, t)
	for i := 0; i < t; i++ {
		end := fileSize
		if i+1 < t {
			end = starts[i+1]
		}
		if end <= starts[i] {
			// Degenerate region: the nominal split landed on the same
			// boundary as its neighbor (common for small files with
			// more workers than messages). Drop it.
			continue
		}
		regions = append(regions, &Region{
			ID:          i,
			StartOffset: starts[i],
			EndOffset:   end,
		})
	}

	return regions, nil
}

// alignStart slides nominal backward in budget-sized jumps. Each jump reads
// the window just before the previous one and returns the first "\nFrom "
// sequence in that window (the earliest one, not the one nearest nominal);
// it moves one window further back only when a window has none, and
// returns 0 if no window back to the file start has one. It never needs to handle
// nominal <= 0 itself; callers treat region 0 as a special case.
func alignStart(backend ioplane.Backend, nominal, budget int64) (int64, error) {
	if nominal <= 0 {
		return 0, nil
	}

	windowEnd := nominal
	for windowEnd > 0 {
		windowStart := windowEnd - budget
		if windowStart < 0 {
			windowStart = 0
		}

		readLen := windowEnd - windowStart
		buf := make([]byte, readLen)
		n, err := backend.ReadAt(buf, windowStart)
		if err != nil && err != io.EOF {
			return 0, err
		}
		buf = buf[:n]

		if idx := IndexDelim(buf); idx >= 0 {
			return windowStart + int64(idx) + 1, nil // +1 skips the leading \n
		}

		if windowStart == 0 {
			break
		}
		windowEnd = windowStart
	}

	return 0, nil
}

// IndexDelim returns the index of the first "\nFrom " sequence in buf, or
// -1 if there is none. Both the planner and the framer search for this
// exact sequence; the framer treats each match as the end of the message
// currently being assembled.
func IndexDelim(buf []byte) int {
	for i := 0; i+len(Delim) <= len(buf); i++ {
		if matchAt(buf, i) {
			return i
		}
	}
	return -1
}

func matchAt(buf []byte, i int) bool {
	for j, c := range Delim {
		if buf[i+j] != c {
			return false
		}
	}
	return true
}
