package mbox

import (
	"sync"

	"github.com/zostay/go-mbox/internal/ioplane"
)

// Mbox is an opened mbox archive, ready to be handed to Parse. It owns the
// underlying file descriptor; callers must call Release when done.
type Mbox struct {
	path    string
	backend ioplane.Backend

	closeOnce sync.Once
	closeErr  error
}

// Open opens path for reading and records its size up front. The
// underlying file descriptor is shared by every I/O worker Parse spawns;
// all access to it goes through positional reads, so no seek is ever
// issued against it.
func Open(path string) (*Mbox, error) {
	backend, err := ioplane.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Mbox{path: path, backend: backend}, nil
}

// Size returns the byte size of the archive as recorded at Open time.
func (m *Mbox) Size() int64 { return m.backend.Size() }

// Path returns the path Open was called with.
func (m *Mbox) Path() string { return m.path }

// Release closes the underlying file descriptor. Release is idempotent
// and safe to call more than once or after a failed Parse.
func (m *Mbox) Release() error {
	m.closeOnce.Do(func() {
		m.closeErr = m.backend.Close()
	})
	return m.closeErr
}
