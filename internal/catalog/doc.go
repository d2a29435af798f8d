// Package catalog loads and serves the bundled park dataset.
//
// The dataset is a JSON document embedded in the binary; there is no
// network fetch and no way to mutate it at runtime. Load decodes it into
// model types, validates it (unique park ids, unique coaster names within
// a park) and mints a synthetic UID for every coaster.
//
// # Basic Usage
//
//	cat, err := catalog.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, park := range cat.Parks() {
//	    fmt.Println(park.Name, len(park.Coasters))
//	}
//
// # Search
//
// Filter derives the visible subset of parks for a free-text search term.
// Matching is case-insensitive over park name, location, state and the
// names of the park's coasters; a matching park is returned whole, its
// coaster list is never trimmed down to the matching coasters.
//
//	visible := cat.Filter("cedar") // just Cedar Point, all coasters intact
package catalog
