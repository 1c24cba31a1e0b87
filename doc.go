// Package mbox implements a parallel reader and sidecar indexer for BSD
// "From_"-style mbox mail archives. A file is split into boundary-aligned
// regions, each region is framed into raw messages by an I/O worker pool,
// and each raw message is parsed into a lightweight MessageRecord by a
// separate parser worker pool, so disk-bound and CPU-bound work scale
// independently.
//
// Open an archive, parse it, and persist the resulting index:
//
//	m, err := mbox.Open("archive.mbox")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer m.Release()
//
//	records, err := mbox.Parse(m, runtime.NumCPU())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := mbox.SaveIndex("archive.idx", records); err != nil {
//		log.Fatal(err)
//	}
//
// A later run can reload the same archive from its index without
// re-parsing every message from scratch:
//
//	records, err := mbox.LoadIndex("archive.idx", "archive.mbox", runtime.NumCPU())
package mbox
