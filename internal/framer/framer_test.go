package framer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mbox/internal/framer"
	"github.com/zostay/go-mbox/internal/ioplane"
	"github.com/zostay/go-mbox/internal/region"
)

const sample = "From a b\nSubject: X\n\nbody1\nFrom a c\nSubject: Y\n\nbody2\n"

func TestScanSplitsTwoMessages(t *testing.T) {
	backend := ioplane.NewMemory([]byte(sample))
	r := &region.Region{StartOffset: 0, EndOffset: int64(len(sample))}

	secondFrom := strings.Index(sample, "From a c")
	require.Greater(t, secondFrom, 0)

	var got []framer.RawMessage
	err := framer.Scan(backend, r, 0, func(m framer.RawMessage) error {
		got = append(got, m)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.EqualValues(t, 0, got[0].Start)
	assert.EqualValues(t, secondFrom, got[0].End)
	assert.Equal(t, sample[:secondFrom], string(got[0].Bytes))

	assert.EqualValues(t, secondFrom, got[1].Start)
	assert.EqualValues(t, len(sample), got[1].End)
	assert.Equal(t, sample[secondFrom:], string(got[1].Bytes))

	assert.Equal(t, byte('F'), sample[got[0].Start])
	assert.Equal(t, byte('F'), sample[got[1].Start])
}

func TestScanSingleMessageNoTrailingNewline(t *testing.T) {
	msg := "From a b\nSubject: only\n\nbody, no trailing newline"
	backend := ioplane.NewMemory([]byte(msg))
	r := &region.Region{StartOffset: 0, EndOffset: int64(len(msg))}

	var got []framer.RawMessage
	err := framer.Scan(backend, r, 0, func(m framer.RawMessage) error {
		got = append(got, m)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, msg, string(got[0].Bytes))
}

func TestScanRespectsSmallBudget(t *testing.T) {
	backend := ioplane.NewMemory([]byte(sample))
	r := &region.Region{StartOffset: 0, EndOffset: int64(len(sample))}

	var got []framer.RawMessage
	err := framer.Scan(backend, r, 4, func(m framer.RawMessage) error {
		got = append(got, m)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestScanPropagatesEmitError(t *testing.T) {
	backend := ioplane.NewMemory([]byte(sample))
	r := &region.Region{StartOffset: 0, EndOffset: int64(len(sample))}

	boom := assert.AnError
	err := framer.Scan(backend, r, 0, func(m framer.RawMessage) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}
