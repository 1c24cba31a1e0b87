package record

import (
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-mbox/header"
)

// PreviewLen is the fixed size of MessageRecord.Preview.
const PreviewLen = 420

// MessageRecord is the public, per-message summary the parser pipeline
// produces: identifier, sender, subject, date, a body preview, and the
// byte offsets of the raw message in its source mbox file. Every pointer
// field is independently optional.
type MessageRecord struct {
	MsgID    *string
	From     *string
	Subject  *string
	DateText *string
	FromLine *string

	Preview [PreviewLen]byte

	UnixTimestamp int64

	Start int64
	End   int64
}

// Assemble builds a MessageRecord from a parsed header.Map and the raw
// message's body and byte offsets. Date is parsed against
// "%d %b %Y %H:%M:%S %z"; if that fails, UnixTimestamp is left at 0,
// matching the spec's stated contract for the core assembly step. Callers
// wanting the broader fallback chain should use ParseDateAny directly and
// overwrite UnixTimestamp themselves.
func Assemble(h *header.Map, body []byte, start, end int64) *MessageRecord {
	r := &MessageRecord{Start: start, End: end}

	if v, ok := h.Get("Message-ID"); ok {
		r.MsgID = strPtr(v)
	}
	if v, ok := h.Get("From"); ok {
		r.From = strPtr(v)
	}
	if v, ok := h.Get("Subject"); ok {
		r.Subject = strPtr(v)
	}
	if v, ok := h.FromLine(); ok {
		r.FromLine = strPtr(v)
	}

	if v, ok := h.Get("Date"); ok {
		r.DateText = strPtr(v)
		if d, err := ParseDate(v, "%d %b %Y %H:%M:%S %z"); err == nil {
			if ts, err := d.ToUnix(); err == nil {
				r.UnixTimestamp = ts
			}
		}
	}

	copy(r.Preview[:], body)
	for i := len(body); i < PreviewLen; i++ {
		r.Preview[i] = 0
	}

	return r
}

func strPtr(s string) *string { return &s }

// FromAddress parses MessageRecord.From through go-addr's structured
// address parser, returning the normalized mailbox string when it parses
// cleanly and the raw decoded header value otherwise. This is a
// best-effort structured view; MessageRecord.From itself stays a plain
// string so round-trip and sort-by-from behave exactly as spec.md
// requires.
func (r *MessageRecord) FromAddress() string {
	if r.From == nil {
		return ""
	}
	list, err := addr.ParseEmailAddressList(*r.From)
	if err != nil || len(list) == 0 {
		return *r.From
	}
	return list.String()
}
