// Package sortutil implements in-place sorting of result lists, kept as a
// thin wrapper over sort.Slice per spec.md's characterization of sorting
// as trivial once MessageRecords exist.
package sortutil

import (
	"sort"

	"github.com/zostay/go-mbox/record"
)

// ByDate sorts records in place by UnixTimestamp ascending.
func ByDate(records []*record.MessageRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].UnixTimestamp < records[j].UnixTimestamp
	})
}

// ByFrom sorts records in place by From ascending; a record with no From
// value sorts before any with one.
func ByFrom(records []*record.MessageRecord) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i].From, records[j].From
		if a == nil {
			return b != nil
		}
		if b == nil {
			return false
		}
		return *a < *b
	})
}
