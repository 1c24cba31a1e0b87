// Package mime implements the multipart boundary walker: extracting the
// boundary token from a Content-Type header value and walking a message
// body section by section far enough to find each section's end, without
// recursively parsing a nested multipart's own sub-parts.
package mime

import (
	"bytes"
	"errors"
)

// ErrNoBoundary is returned when a Content-Type value contains no
// extractable boundary token.
var ErrNoBoundary = errors.New("mime: no boundary in content-type value")

// Boundary extracts the boundary token from a multipart Content-Type
// header value, following original_source/src/mbox-parser.c's
// mboxParseBoundaryMark exactly: advance to the first "b", then to the
// following "=". If the next byte is a double quote, the boundary is the
// quoted string; otherwise it is the remainder of the value with every
// '\r' stripped.
func Boundary(contentType string) (string, error) {
	data := []byte(contentType)

	bIdx := bytes.IndexByte(data, 'b')
	if bIdx < 0 {
		return "", ErrNoBoundary
	}
	eqIdx := bytes.IndexByte(data[bIdx:], '=')
	if eqIdx < 0 {
		return "", ErrNoBoundary
	}
	pos := bIdx + eqIdx + 1
	if pos >= len(data) {
		return "", ErrNoBoundary
	}

	if data[pos] == '"' {
		rest := data[pos+1:]
		end := bytes.IndexByte(rest, '"')
		if end < 0 {
			return "", ErrNoBoundary
		}
		return string(rest[:end]), nil
	}

	rest := data[pos:]
	out := make([]byte, 0, len(rest))
	for _, c := range rest {
		if c == '\r' {
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return "", ErrNoBoundary
	}
	return string(out), nil
}
