// Package model defines the core data structures used throughout
// the coasterlog application.
//
// # Park and Coaster
//
// Park represents a theme park with its location and the ordered list of
// roller coasters it operates. Both are immutable once the catalog has been
// loaded; there are no setters.
//
//	park.Name      // "Cedar Point"
//	park.Coasters  // ordered, as authored in the dataset
//
// # CoasterID
//
// CoasterID derives the join key between a coaster and the persisted user
// state (ridden flags, ratings):
//
//	id := model.CoasterID(park.ID, coaster.Name) // "1:Millennium Force"
//
// The key embeds the coaster's display name, so renaming a coaster in the
// dataset orphans any previously stored entry for it. Every coaster also
// carries a synthetic UID minted at load time as a future migration path
// away from the composite key.
//
// # RiddenMap and RatingMap
//
// RiddenMap and RatingMap hold the per-coaster user annotations keyed by
// CoasterID. A missing key means "not ridden" and "unrated" respectively;
// ratings are integers in [1,5].
package model
