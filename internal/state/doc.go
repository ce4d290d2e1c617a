// Package state holds the in-memory copy of the remote catalog.
//
// # Overview
//
// The catalog view model, the optional background refresher and the UI all
// read the same Store. Writers replace the whole category list at once; there
// is no incremental merge.
//
// # Update Semantics
//
//	// Success: replace everything
//	store.Update(categories, nil)
//	→ snapshot.Categories = categories (deep copy)
//	→ snapshot.LastError = nil
//
//	// Failure: keep the last good catalog, record the error
//	store.Update(nil, err)
//	→ snapshot.Categories = <unchanged>
//	→ snapshot.LastError = err
//
// A failed fetch therefore never leaves the UI with an empty or partial
// catalog.
//
// # Copying
//
// Update, Snapshot and Category all deep-copy categories and their item
// slices. Workflows can mutate what they get back without touching the
// shared copy.
//
// # Concurrency Model
//
// Store uses a sync.RWMutex. The lock is held only while copying, never
// during network I/O. The zero value is ready to use.
package state
