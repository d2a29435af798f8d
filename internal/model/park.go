package model

import "strconv"

// Park represents a theme park and the roller coasters it operates.
//
// Parks are immutable after the catalog is loaded: the dataset is bundled
// with the binary and lives for the lifetime of the process. The coaster
// slice preserves the order in which coasters were authored in the dataset.
type Park struct {
	// ID is the unique park identifier, stable across releases of the dataset.
	ID int

	// Name is the park's display name.
	Name string

	// Location is the park's city, e.g. "Sandusky, OH".
	Location string

	// State is the two-letter US state or Canadian province code.
	State string

	// Lat and Lon are the park's geographic coordinates in decimal degrees.
	Lat float64
	Lon float64

	// Coasters is the ordered list of coasters operating at the park.
	Coasters []*Coaster
}

// Coaster represents a single roller coaster within a park.
type Coaster struct {
	// UID is a synthetic identifier minted when the catalog is loaded.
	// It is not persisted anywhere yet; it exists so user state can be
	// migrated off the name-based CoasterID without touching the dataset.
	UID string

	// Name is the coaster's display name, unique within its park.
	Name string

	// Speed is the top speed in mph.
	Speed float64

	// Height is the highest point of the track in feet.
	Height float64

	// Drop is the largest drop in feet.
	Drop float64

	// Length is the total track length in feet.
	Length float64

	// Inversions is the number of inversions, zero for non-inverting rides.
	Inversions int

	// Type is the construction type: "steel", "wood" or "hybrid".
	Type string

	// Opened is the year the coaster opened to the public.
	Opened int

	// POVVideo is a URL to an on-ride point-of-view video.
	POVVideo string

	// Description is a one-line summary shown on the detail screen.
	Description string
}

// CoasterID derives the key under which user state for a coaster is stored.
//
// The key is the park id and the coaster's name joined by a colon, e.g.
// "1:Millennium Force". It is stable for a given (park, coaster) pair for
// the lifetime of the dataset and distinct from the key of any other pair:
// park ids are unique integers and coaster names are unique within a park.
func CoasterID(parkID int, coasterName string) string {
	return strconv.Itoa(parkID) + ":" + coasterName
}

// Coaster returns the coaster with the given name, or nil if the park has
// no coaster by that name.
func (p *Park) Coaster(name string) *Coaster {
	for _, c := range p.Coasters {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// CoasterID derives the user-state key for the named coaster at this park.
func (p *Park) CoasterID(coasterName string) string {
	return CoasterID(p.ID, coasterName)
}
