package header

import "bytes"

// Parse consumes header fields from the start of data until a blank line
// (or end of input) is reached, and returns the populated Map along with
// the index of the first body byte (the byte right after the blank line
// terminator, len(data) if input ended first, or the start of the first
// malformed line, as described below).
//
// Malformed input never produces an error: a line that is neither the
// envelope "From " line, blank, nor a recognizable "Name: Value" field
// simply ends header parsing at that point, so a record is always built
// from whatever fields parsed successfully.
func Parse(data []byte) (*Map, int) {
	m := New()
	off := 0

	for off < len(data) && (data[off] == '\r' || data[off] == '\n') {
		off++
	}

	for off < len(data) {
		if isBlankLine(data, off) {
			off = skipBlankLine(data, off)
			break
		}

		if bytes.HasPrefix(data[off:], []byte("From ")) {
			end := lineEnd(data, off)
			line := trimCR(data[off:end])
			m.Set(FromLineKey, string(line))
			off = advancePastLine(data, end)
			continue
		}

		colon := bytes.IndexByte(data[off:], ':')
		nl := bytes.IndexByte(data[off:], '\n')
		if colon < 0 || (nl >= 0 && colon > nl) {
			// Not a recognizable field; stop without consuming this line.
			break
		}

		name := string(data[off : off+colon])
		valueStart := off + colon + 1
		if valueStart < len(data) && data[valueStart] == ' ' {
			valueStart++
		}

		end := lineEnd(data, valueStart)
		value := trimCR(data[valueStart:end])
		next := advancePastLine(data, end)

		for next < len(data) && (data[next] == ' ' || data[next] == '\t') {
			contEnd := lineEnd(data, next)
			cont := stripContinuation(data[next:contEnd])
			value = append(append([]byte{}, value...), cont...)
			next = advancePastLine(data, contEnd)
		}

		m.Set(name, decodeEncodedWord(string(value)))
		off = next
	}

	return m, off
}

// lineEnd returns the index of the '\n' terminating the line starting at
// off, or len(data) if the line is unterminated.
func lineEnd(data []byte, off int) int {
	if idx := bytes.IndexByte(data[off:], '\n'); idx >= 0 {
		return off + idx
	}
	return len(data)
}

// advancePastLine returns the index right after the newline at end, or
// len(data) if end is already at the end of input.
func advancePastLine(data []byte, end int) int {
	if end < len(data) {
		return end + 1
	}
	return end
}

func trimCR(line []byte) []byte {
	if len(line) > 0 && line[len(line)-1] == '\r' {
		return line[:len(line)-1]
	}
	return line
}

// stripContinuation strips the leading indent of a continuation line: the
// leading whitespace byte itself, any '\r', and any '\t' are dropped;
// other spaces are kept, per the mbox header grammar.
func stripContinuation(line []byte) []byte {
	if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
		line = line[1:]
	}
	out := make([]byte, 0, len(line))
	for _, c := range line {
		if c == '\r' || c == '\t' {
			continue
		}
		out = append(out, c)
	}
	return out
}

func isBlankLine(data []byte, off int) bool {
	if off >= len(data) {
		return true
	}
	if data[off] == '\n' {
		return true
	}
	if data[off] == '\r' && off+1 < len(data) && data[off+1] == '\n' {
		return true
	}
	return false
}

func skipBlankLine(data []byte, off int) int {
	if off >= len(data) {
		return off
	}
	if data[off] == '\r' {
		off++
	}
	if off < len(data) && data[off] == '\n' {
		off++
	}
	return off
}
