// Package rawbuf implements the growable, cursor-based byte buffer that
// backs every raw message and region read in the mbox pipeline.
package rawbuf

const minGrowth = 256

// Buffer is a growable byte container with three cursors: Len (bytes
// present), Offset (the current parse position, 0 <= Offset <= Len), and an
// internal capacity that never shrinks. The byte at data[Len] is always 0,
// so callers that want a NUL-terminated view can slice data[:Len+1].
type Buffer struct {
	data []byte
	len  int
	off  int
}

// New allocates a Buffer with at least the given capacity.
func New(capacity int) *Buffer {
	if capacity < minGrowth {
		capacity = minGrowth
	}
	return &Buffer{data: make([]byte, capacity+1)}
}

// Len returns the number of bytes currently stored in the buffer.
func (b *Buffer) Len() int { return b.len }

// Cap returns the buffer's current capacity. It never shrinks.
func (b *Buffer) Cap() int { return len(b.data) - 1 }

// Offset returns the current parse position.
func (b *Buffer) Offset() int { return b.off }

// SetOffset moves the parse position. It panics if off is out of
// [0, Len] range, since that would violate the buffer's invariant.
func (b *Buffer) SetOffset(off int) {
	if off < 0 || off > b.len {
		panic("rawbuf: offset out of range")
	}
	b.off = off
}

// Advance moves the parse position forward by n bytes.
func (b *Buffer) Advance(n int) { b.SetOffset(b.off + n) }

// Remaining returns the number of unconsumed bytes between Offset and Len.
func (b *Buffer) Remaining() int { return b.len - b.off }

// Bytes returns the full slice of bytes currently stored, not including the
// NUL sentinel.
func (b *Buffer) Bytes() []byte { return b.data[:b.len] }

// Tail returns the unconsumed bytes from Offset to Len.
func (b *Buffer) Tail() []byte { return b.data[b.off:b.len] }

// At returns the byte at the given absolute index, or 0 if idx == Len (the
// sentinel) or idx is otherwise out of range.
func (b *Buffer) At(idx int) byte {
	if idx < 0 || idx > b.len {
		return 0
	}
	return b.data[idx]
}

// CurByte returns the byte at the current Offset, or the NUL sentinel if
// Offset == Len.
func (b *Buffer) CurByte() byte { return b.At(b.off) }

// MatchChar reports whether the byte at Offset equals c.
func (b *Buffer) MatchChar(c byte) bool { return b.CurByte() == c }

// grow ensures the buffer can hold at least n additional bytes beyond Len,
// expanding capacity in steps of at least minGrowth bytes and never
// shrinking.
func (b *Buffer) grow(n int) {
	need := b.len + n + 1 // +1 for the NUL sentinel
	if need <= len(b.data) {
		return
	}
	newCap := len(b.data)
	if newCap == 0 {
		newCap = minGrowth + 1
	}
	for newCap < need {
		inc := newCap
		if inc < minGrowth {
			inc = minGrowth
		}
		newCap += inc
	}
	grown := make([]byte, newCap)
	copy(grown, b.data[:b.len])
	b.data = grown
}

// Append copies p onto the end of the buffer, growing as needed, and
// maintains the NUL sentinel at the new Len.
func (b *Buffer) Append(p []byte) {
	b.grow(len(p))
	copy(b.data[b.len:], p)
	b.len += len(p)
	b.data[b.len] = 0
}

// PutByte appends a single byte.
func (b *Buffer) PutByte(c byte) { b.Append([]byte{c}) }

// Truncate discards everything from idx onward, resetting Len to idx. It
// panics if idx is out of [0, Len] range. If Offset now exceeds the new
// Len, Offset is clamped to it.
func (b *Buffer) Truncate(idx int) {
	if idx < 0 || idx > b.len {
		panic("rawbuf: truncate index out of range")
	}
	b.len = idx
	b.data[b.len] = 0
	if b.off > b.len {
		b.off = b.len
	}
}

// Compact discards everything before Offset, shifting the remaining bytes
// (and the sentinel) down to index 0 and resetting Offset to 0. This is
// used by the framing loop after each emitted message so the working
// buffer doesn't grow without bound across a whole region.
func (b *Buffer) Compact() {
	if b.off == 0 {
		return
	}
	n := copy(b.data, b.data[b.off:b.len])
	b.len = n
	b.off = 0
	b.data[b.len] = 0
}

// Reset empties the buffer without releasing its capacity.
func (b *Buffer) Reset() {
	b.len = 0
	b.off = 0
	b.data[0] = 0
}

// Slice returns a copy of data[start:end]. Used when handing ownership of
// a message's bytes off to another goroutine, since the source Buffer will
// continue to be mutated (compacted, refilled) after the slice is taken.
func (b *Buffer) Slice(start, end int) []byte {
	if start < 0 || end > b.len || start > end {
		panic("rawbuf: slice out of range")
	}
	out := make([]byte, end-start)
	copy(out, b.data[start:end])
	return out
}
