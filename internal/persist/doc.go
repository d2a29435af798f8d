// Package persist synchronizes the in-memory user state (ridden flags,
// ratings) with a key-value store.
//
// # Contract
//
// Load reads both maps and never fails: a missing key, an unreadable store
// or a malformed value all degrade to an empty map with a logged warning.
// The application always starts interactive.
//
// SaveRidden and SaveRating are fire-and-forget. Each hands a full snapshot
// of its map to a background writer; the caller's in-memory state is
// already updated and is never rolled back if the write later fails.
// Rapid successive snapshots for the same key coalesce: only the newest
// pending snapshot is written, so the store converges on the last write.
//
// Flush blocks until both writers are idle. Tests and shutdown use it to
// make the asynchronous writes deterministic.
//
//	svc := persist.New(st, logger)
//	ridden, ratings := svc.Load(ctx)
//	ridden["1:Raptor"] = true
//	svc.SaveRidden(ridden)
//	...
//	svc.Close() // flushes, then stops the writers
package persist
