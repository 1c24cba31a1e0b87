// Package framer implements the I/O worker's message framing loop: walking
// a single region forward from its aligned start, cutting the byte stream
// into individual raw messages at each "\nFrom " delimiter, and handing the
// raw bytes off to the caller (normally a job submitted to the parser
// pool). A framer never looks past its region's EndOffset and never shares
// its working buffer with another goroutine, so regions can be walked
// fully in parallel against a single open file descriptor.
package framer

import (
	"io"

	"github.com/zostay/go-mbox/internal/ioplane"
	"github.com/zostay/go-mbox/internal/rawbuf"
	"github.com/zostay/go-mbox/internal/region"
)

// RawMessage is an unparsed message extracted from the mbox stream: the
// exact bytes from its "From " envelope line up to (and including) the
// trailing newline that precedes the next message's envelope line, along
// with its absolute file offsets.
type RawMessage struct {
	Bytes []byte
	Start int64
	End   int64
}

// Emit receives one framed message. Returning a non-nil error aborts the
// scan for the owning region; the error is not visible to sibling regions.
type Emit func(RawMessage) error

// Scan walks r forward from r.StartOffset to r.EndOffset, issuing
// positional reads against backend in budget-sized batches (0 means
// region.IOReadSize), and calls emit once per message found. It never
// mutates backend's read cursor (ReadAt is always given an explicit
// offset) so many Scan calls may run concurrently against the same
// backend.
//
// The accumulating buffer design means a delimiter that straddles two
// reads never needs special-case handling: a failed match simply triggers
// another refill and the whole unconsumed buffer is rescanned.
func Scan(backend ioplane.Backend, r *region.Region, budget int64, emit Emit) error {
	if budget <= 0 {
		budget = region.IOReadSize
	}
	buf := rawbuf.New(int(budget))
	cursor := r.StartOffset
	fileCursor := r.StartOffset

	refill := func() (int, error) {
		remain := r.EndOffset - fileCursor
		if remain <= 0 {
			return 0, io.EOF
		}
		readLen := remain
		if readLen > budget {
			readLen = budget
		}
		tmp := make([]byte, readLen)
		n, err := backend.ReadAt(tmp, fileCursor)
		if n > 0 {
			buf.Append(tmp[:n])
			fileCursor += int64(n)
		}
		if err != nil && err != io.EOF {
			return n, err
		}
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}

	if _, err := refill(); err != nil && err != io.EOF {
		return err
	}

	for {
		data := buf.Bytes()

		idx := -1
		if len(data) > 1 {
			if found := region.IndexDelim(data[1:]); found >= 0 {
				idx = found + 1
			}
		}

		if idx >= 0 {
			msgLen := idx + 1 // include the delimiter's leading newline
			msgBytes := buf.Slice(0, msgLen)
			if err := emit(RawMessage{
				Bytes: msgBytes,
				Start: cursor,
				End:   cursor + int64(msgLen),
			}); err != nil {
				return err
			}
			cursor += int64(msgLen)
			buf.SetOffset(msgLen)
			buf.Compact()
			continue
		}

		if fileCursor >= r.EndOffset {
			if buf.Len() > 0 {
				msgBytes := buf.Slice(0, buf.Len())
				if err := emit(RawMessage{
					Bytes: msgBytes,
					Start: cursor,
					End:   cursor + int64(buf.Len()),
				}); err != nil {
					return err
				}
			}
			return nil
		}

		if _, err := refill(); err != nil && err != io.EOF {
			return err
		}
	}
}
