package mbox

import (
	"github.com/zostay/go-mbox/index"
	"github.com/zostay/go-mbox/record"
	"github.com/zostay/go-mbox/search"
	"github.com/zostay/go-mbox/sortutil"
)

// SaveIndex persists records to path in the sidecar index format described
// in spec §4.7: sorted ascending by Start, one "{start} {end}\n" line per
// record.
func SaveIndex(path string, records []*record.MessageRecord) error {
	return index.Save(path, records)
}

// LoadIndex reloads an index previously written by SaveIndex, re-parsing
// each indexed message from mboxPath in parallel with threadCount workers.
// A missing index file is not an error; it yields an empty, nil-error
// result.
func LoadIndex(idxPath, mboxPath string, threadCount int) ([]*record.MessageRecord, error) {
	return index.Load(idxPath, mboxPath, threadCount)
}

// FilterBySender returns the subset of records whose From field contains
// needle, matched case-insensitively via a Knuth-Morris-Pratt scan.
func FilterBySender(records []*record.MessageRecord, needle string) []*record.MessageRecord {
	return search.FilterBySender(records, needle)
}

// SortByDate sorts records in place by UnixTimestamp ascending.
func SortByDate(records []*record.MessageRecord) {
	sortutil.ByDate(records)
}

// SortByFrom sorts records in place by From ascending.
func SortByFrom(records []*record.MessageRecord) {
	sortutil.ByFrom(records)
}
