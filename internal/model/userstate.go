package model

// Rating bounds. Ratings outside [MinRating, MaxRating] are rejected by the
// application layer; they never reach a RatingMap.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether r is an acceptable star rating.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// RiddenMap records which coasters the user has ridden, keyed by CoasterID.
// A missing key means not ridden.
type RiddenMap map[string]bool

// RatingMap records the user's 1-5 star ratings, keyed by CoasterID.
// A missing key means unrated.
type RatingMap map[string]int

// Clone returns an independent copy of the map. The persistence layer
// serializes clones so that in-flight writes never observe later mutations.
func (m RiddenMap) Clone() RiddenMap {
	out := make(RiddenMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy of the map.
func (m RatingMap) Clone() RatingMap {
	out := make(RatingMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
