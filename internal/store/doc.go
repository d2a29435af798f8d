// Package store defines the key-value persistence contract and its
// implementations.
//
// The contract is deliberately small: opaque string values under string
// keys, where a missing key is a normal outcome, not an error.
//
//	value, ok, err := st.Get(ctx, "ridden-coasters")
//	err = st.Set(ctx, "coaster-ratings", `{"1:Raptor":4}`)
//
// Three implementations ship:
//   - Memory: ephemeral, for tests and --store=memory runs
//   - File: one file per key under a data directory (the default)
//   - SQLite: a single-table kv database, for users who want one file
//
// Higher layers never interpret store failures as fatal; see the persist
// package for the fail-soft policy.
package store
