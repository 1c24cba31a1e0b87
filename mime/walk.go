package mime

import (
	"bytes"

	"github.com/zostay/go-mbox/header"
)

// Status reports how a Walk terminated.
type Status int

const (
	// StatusEOM means the terminal "--boundary--" marker was found.
	StatusEOM Status = iota
	// StatusIncomplete means the body ran out before a terminal marker was
	// found. In the original design this was the enclosing framing loop's
	// cue to refill and re-enter; here the body is already fully
	// materialized, so it instead means the message's multipart structure
	// is truncated or malformed.
	StatusIncomplete
)

// Section is one part of a multipart message: its own parsed sub-headers
// and the byte range of its body within the original message body slice.
// A section's body is not itself re-walked for nested multipart
// structure; see Walk's doc comment.
type Section struct {
	Headers   *header.Map
	BodyStart int
	BodyEnd   int
}

// Walk scans body for occurrences of "--boundary", validating the
// multipart structure far enough to find each section and, ultimately,
// the terminal "--boundary--" marker that defines the message's true end.
// It never panics: an impossible or truncated boundary sequence is
// reported as StatusIncomplete, never a process-fatal condition, so a
// caller can record the outcome on the owning region and move on.
//
// Nested multipart boundaries are not recursively walked: a section's own
// sub-headers are parsed, but if that section's Content-Type declares its
// own nested boundary, Walk does not recurse into it. The section's body
// range is delimited purely by the next occurrence of the *outer*
// boundary token.
func Walk(body []byte, boundary string) ([]Section, Status) {
	marker := []byte("--" + boundary)
	var sections []Section
	off := 0

	for {
		idx := bytes.Index(body[off:], marker)
		if idx < 0 {
			return sections, StatusIncomplete
		}
		markerStart := off + idx
		after := markerStart + len(marker)

		if after+2 <= len(body) && body[after] == '-' && body[after+1] == '-' {
			return sections, StatusEOM
		}

		if after >= len(body) {
			return sections, StatusIncomplete
		}
		if body[after] != '\r' && body[after] != '\n' {
			// Coincidental occurrence of the marker text, not a real
			// boundary line; keep scanning past it.
			off = after
			continue
		}

		nl := bytes.IndexByte(body[after:], '\n')
		if nl < 0 {
			return sections, StatusIncomplete
		}
		subStart := after + nl + 1

		hdrs, bodyOff := header.Parse(body[subStart:])
		sectionBodyStart := subStart + bodyOff

		nextIdx := bytes.Index(body[sectionBodyStart:], marker)
		if nextIdx < 0 {
			sections = append(sections, Section{
				Headers:   hdrs,
				BodyStart: sectionBodyStart,
				BodyEnd:   len(body),
			})
			return sections, StatusIncomplete
		}

		sectionBodyEnd := sectionBodyStart + nextIdx
		sections = append(sections, Section{
			Headers:   hdrs,
			BodyStart: sectionBodyStart,
			BodyEnd:   sectionBodyEnd,
		})
		off = sectionBodyEnd
	}
}
