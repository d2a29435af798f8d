// Package config provides configuration management for coasterlog.
//
// Settings live in a JSON file; a missing file means defaults, a present
// file overrides them field by field.
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // malformed file; defaults are NOT silently substituted here,
//	    // the user asked for that file and should know it is broken
//	}
//
// # Options
//
//   - DataDir: where the store keeps persisted user state
//   - StoreBackend: "file" (default), "sqlite" or "memory"
//   - HomeMode: which home screen opens first, "map" or "list"
//   - LogFile: where structured logs go (never the terminal; the TUI
//     owns the terminal)
//   - Verbose: debug-level logging
package config
