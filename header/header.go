// Package header implements the mbox header grammar: the envelope "From "
// line, colon-space fields with RFC-822-style continuation lines, and
// RFC 2047 MIME-encoded-word decoding of field values.
package header

import (
	"sort"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// FromLineKey is the synthetic header name under which the envelope
// "From " line is stored, since it is not a colon-space field itself.
const FromLineKey = "__FROM_LINE__"

// Map is an ordered, case-insensitive mapping from header name to header
// value. Lookup is case-insensitive and there are no duplicate keys;
// iteration order is deterministic (sorted by the case-folded key) even
// though insertion order is not preserved.
type Map struct {
	values map[string]string // keyed by case-folded name
	names  map[string]string // case-folded name -> original-cased name
}

// New returns an empty Map.
func New() *Map {
	return &Map{
		values: make(map[string]string),
		names:  make(map[string]string),
	}
}

// Set inserts or overwrites the value for name. Lookup of name is
// case-insensitive; the first-seen casing is kept for iteration.
func (m *Map) Set(name, value string) {
	key := strings.ToLower(name)
	if _, ok := m.names[key]; !ok {
		m.names[key] = name
	}
	m.values[key] = value
}

// Get returns the value stored for name and whether it was present.
// Lookup is case-insensitive.
func (m *Map) Get(name string) (string, bool) {
	v, ok := m.values[strings.ToLower(name)]
	return v, ok
}

// FromLine returns the stored envelope "From " line, if any.
func (m *Map) FromLine() (string, bool) {
	return m.Get(FromLineKey)
}

// Len returns the number of fields stored, including the synthetic
// envelope line if present.
func (m *Map) Len() int { return len(m.values) }

// Keys returns the original-cased field names in deterministic
// (case-folded, sorted) order.
func (m *Map) Keys() []string {
	folded := make([]string, 0, len(m.values))
	for k := range m.values {
		folded = append(folded, k)
	}
	sort.Strings(folded)
	out := make([]string, len(folded))
	for i, k := range folded {
		out[i] = m.names[k]
	}
	return out
}

// decodeEncodedWord decodes an RFC 2047 "=?charset?Q?...?=" token into its
// plain-text form. Only the Q (quoted-printable) encoding is supported, per
// the mbox core's stated scope; values that are not a recognized
// encoded-word are returned unchanged. Charset resolution goes through
// golang.org/x/text/encoding/ianaindex so any IANA-registered charset
// works, not only utf-8.
//
// The Q-decode step itself is a literal "=XX -> byte 0xXX, everything else
// unchanged" substitution, not RFC 2047's "_  means space" rule: this
// matches the mbox core's own decoder rather than net/mail's, so
// "Hello_World" decodes to "Hello_World", not "Hello World".
func decodeEncodedWord(value string) string {
	if !looksLikeEncodedWord(value) {
		return value
	}
	v := strings.TrimSpace(value)
	parts := strings.SplitN(v[2:len(v)-2], "?", 3)
	if len(parts) != 3 {
		return value
	}
	charset, enc, text := parts[0], parts[1], parts[2]
	if !strings.EqualFold(enc, "Q") {
		return value
	}

	raw := decodeQSubstitution(text)

	if strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "us-ascii") {
		return string(raw)
	}
	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil || e == nil {
		return value
	}
	decoded, err := e.NewDecoder().Bytes(raw)
	if err != nil {
		return value
	}
	return string(decoded)
}

// decodeQSubstitution replaces each "=XX" escape (XX two hex digits) with
// the byte value 0xXX; every other byte, including "_", passes through
// unchanged. This is a direct port of the mbox core's decodeMimeEncoded.
func decodeQSubstitution(text string) []byte {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); {
		if text[i] == '=' && i+2 < len(text) {
			if b, ok := hexToByte(text[i+1], text[i+2]); ok {
				out = append(out, b)
				i += 3
				continue
			}
		}
		out = append(out, text[i])
		i++
	}
	return out
}

func hexToByte(hi, lo byte) (byte, bool) {
	h, ok := hexDigit(hi)
	if !ok {
		return 0, false
	}
	l, ok := hexDigit(lo)
	if !ok {
		return 0, false
	}
	return h<<4 | l, true
}

func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

func looksLikeEncodedWord(value string) bool {
	v := strings.TrimSpace(value)
	return strings.HasPrefix(v, "=?") && strings.HasSuffix(v, "?=") && strings.Count(v, "?") >= 4
}
