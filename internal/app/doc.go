// Package app holds the whole application state behind a single
// controller.
//
// The App owns the catalog, the navigation machine, the two user-state
// maps and the persistence service. The UI mutates state exclusively
// through the intent methods (SelectPark, ToggleRidden, SetRating, ...)
// and reads it back through read-only accessors, so the core is testable
// without a terminal.
//
// All intents run synchronously in memory; persistence is fire-and-forget
// behind them. Invalid intents (out-of-range rating, coaster outside the
// selected park) are rejected as logged no-ops, matching the rest of the
// application's fail-soft posture.
package app
