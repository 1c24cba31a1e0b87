package rawbuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-mbox/internal/rawbuf"
)

func TestNewHasSentinel(t *testing.T) {
	b := rawbuf.New(16)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, byte(0), b.At(b.Len()))
	assert.True(t, b.Cap() >= 256)
}

func TestAppendGrows(t *testing.T) {
	b := rawbuf.New(4)
	for i := 0; i < 1000; i++ {
		b.Append([]byte{byte('a' + i%26)})
	}
	assert.Equal(t, 1000, b.Len())
	assert.Equal(t, byte(0), b.At(b.Len()))
}

func TestOffsetAdvance(t *testing.T) {
	b := rawbuf.New(16)
	b.Append([]byte("From a b\n"))
	assert.Equal(t, byte('F'), b.CurByte())
	b.Advance(5)
	assert.Equal(t, byte('a'), b.CurByte())
	assert.Equal(t, 4, b.Remaining())
}

func TestCompactShiftsTail(t *testing.T) {
	b := rawbuf.New(16)
	b.Append([]byte("HEADERbody"))
	b.SetOffset(6)
	b.Compact()
	assert.Equal(t, "body", string(b.Bytes()))
	assert.Equal(t, 0, b.Offset())
}

func TestTruncateClampsOffset(t *testing.T) {
	b := rawbuf.New(16)
	b.Append([]byte("0123456789"))
	b.SetOffset(9)
	b.Truncate(5)
	assert.Equal(t, 5, b.Offset())
	assert.Equal(t, "01234", string(b.Bytes()))
}

func TestSliceIsIndependentCopy(t *testing.T) {
	b := rawbuf.New(16)
	b.Append([]byte("abcdef"))
	s := b.Slice(1, 4)
	assert.Equal(t, "bcd", string(s))
	b.Reset()
	b.Append([]byte("zzzzzz"))
	assert.Equal(t, "bcd", string(s))
}

func TestCapNeverShrinksBelowPriorGrowth(t *testing.T) {
	b := rawbuf.New(16)
	for i := 0; i < 5000; i++ {
		b.PutByte('x')
	}
	big := b.Cap()
	b.Truncate(0)
	b.Reset()
	assert.GreaterOrEqual(t, b.Cap(), big)
}
