package mbox

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/zostay/go-mbox/header"
	"github.com/zostay/go-mbox/internal/framer"
	"github.com/zostay/go-mbox/internal/region"
	"github.com/zostay/go-mbox/internal/resultlist"
	"github.com/zostay/go-mbox/internal/workerpool"
	"github.com/zostay/go-mbox/internal/zaplog"
	"github.com/zostay/go-mbox/mime"
	"github.com/zostay/go-mbox/record"
)

// DefaultChunkSize is the read budget used for both backward boundary
// alignment and forward message framing when WithChunkSize is not given.
// It matches region.IOReadSize, the batching budget the index loader uses
// for its own positional reads.
const DefaultChunkSize = region.IOReadSize

type parser struct {
	chunkSize      int64
	maxConcurrency int
	logger         *zap.SugaredLogger
}

var defaultParser = &parser{
	chunkSize: DefaultChunkSize,
	logger:    zaplog.Nop(),
}

func (p *parser) clone() *parser {
	c := *p
	return &c
}

// ParseOption configures a call to Parse.
type ParseOption func(p *parser)

// WithChunkSize overrides the read budget used for boundary alignment and
// message framing. The default is DefaultChunkSize.
func WithChunkSize(n int64) ParseOption {
	return func(p *parser) { p.chunkSize = n }
}

// WithAlignConcurrency bounds how many region-alignment scans run at once.
// By default every region aligns at once: one scan per I/O worker, that is
// threadCount/2 (at least one).
func WithAlignConcurrency(n int) ParseOption {
	return func(p *parser) { p.maxConcurrency = n }
}

// WithLogger attaches a structured logger to Parse. The default discards
// everything.
func WithLogger(l *zap.SugaredLogger) ParseOption {
	return func(p *parser) { p.logger = l }
}

// Parse runs the full pipeline described in spec §4: plan one
// boundary-aligned region per I/O worker, walk each with an I/O worker that frames raw
// messages, and hand each raw message to a parser worker that builds a
// MessageRecord. I/O workers and parser workers each get threadCount/2
// long-lived goroutines (per spec §5's T_io/T_par split); threadCount < 2
// falls back to one worker in each pool.
//
// A region whose I/O fails aborts only that region; Parse still returns
// the records every other region produced, with the first region error
// (if any) as its returned error.
func Parse(m *Mbox, threadCount int, opts ...ParseOption) ([]*record.MessageRecord, error) {
	p := defaultParser.clone()
	for _, opt := range opts {
		opt(p)
	}

	tIO := threadCount / 2
	tPar := threadCount / 2
	if tIO <= 0 {
		tIO = 1
	}
	if tPar <= 0 {
		tPar = 1
	}

	regions, err := region.Plan(context.Background(), m.backend, m.backend.Size(), tIO, p.chunkSize, p.maxConcurrency)
	if err != nil {
		return nil, fmt.Errorf("mbox: plan regions: %w", err)
	}

	results := resultlist.New()
	parPool := workerpool.New(tPar)
	ioPool := workerpool.New(tIO)

	var mu sync.Mutex
	var firstErr error
	recordErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for _, r := range regions {
		r := r
		ioPool.Enqueue(func() {
			err := framer.Scan(m.backend, r, p.chunkSize, func(raw framer.RawMessage) error {
				parPool.Enqueue(func() {
					results.Append(parseMessage(raw, p.logger))
				})
				return nil
			})
			if err != nil {
				r.Err = err
				p.logger.Warnw("region aborted", "region", r.ID, "start", r.StartOffset, "error", err)
				recordErr(err)
			}
		})
	}

	ioPool.Wait()
	parPool.Wait()
	ioPool.Close()
	parPool.Close()

	return results.Snapshot(), firstErr
}

// parseMessage turns one raw framed message into a MessageRecord,
// validating (but not emitting) any multipart structure the message
// declares, per spec §4.4: the walk exists to confirm the message's
// structure is well-formed, not to surface sub-bodies.
func parseMessage(raw framer.RawMessage, logger *zap.SugaredLogger) *record.MessageRecord {
	h, bodyOff := header.Parse(raw.Bytes)
	body := raw.Bytes[bodyOff:]

	if ct, ok := h.Get("Content-Type"); ok && strings.Contains(strings.ToLower(ct), "multipart") {
		if boundary, err := mime.Boundary(ct); err == nil {
			if _, status := mime.Walk(body, boundary); status == mime.StatusIncomplete {
				logger.Debugw("truncated multipart structure", "start", raw.Start, "boundary", boundary)
			}
		}
	}

	return record.Assemble(h, body, raw.Start, raw.End)
}
