package search

import "github.com/zostay/go-mbox/record"

// FilterBySender returns the subset of records whose From field contains
// needle, matched case-insensitively via ContainsPattern. A record with
// no From value never matches.
func FilterBySender(records []*record.MessageRecord, needle string) []*record.MessageRecord {
	out := make([]*record.MessageRecord, 0, len(records))
	for _, r := range records {
		if r.From == nil {
			continue
		}
		if ContainsPattern(*r.From, needle) >= 0 {
			out = append(out, r)
		}
	}
	return out
}
