// Package resultlist implements the shared result list MessageRecords are
// appended to as parser workers finish each raw message. The original
// design used a circular doubly-linked list guarded by a single mutex;
// since the contract only requires O(1) append and O(n) ordered traversal
// (spec.md §9), this is a mutex-guarded growable slice instead.
package resultlist

import (
	"sync"

	"github.com/zostay/go-mbox/record"
)

// List is a thread-safe, append-only collection of MessageRecords.
type List struct {
	mu      sync.Mutex
	records []*record.MessageRecord
}

// New returns an empty List.
func New() *List {
	return &List{}
}

// Append adds r to the list. Safe for concurrent use by many parser
// workers at once.
func (l *List) Append(r *record.MessageRecord) {
	l.mu.Lock()
	l.records = append(l.records, r)
	l.mu.Unlock()
}

// Len returns the number of records currently in the list.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Snapshot returns a copy of the list's current contents. The order
// matches append order for a single caller but is otherwise unspecified
// across multiple goroutines, per spec.md §5: callers that need a
// particular order sort the result themselves.
func (l *List) Snapshot() []*record.MessageRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*record.MessageRecord, len(l.records))
	copy(out, l.records)
	return out
}
