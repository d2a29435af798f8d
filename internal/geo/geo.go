// Package geo maps park coordinates onto the fixed plotting plane used by
// the map view.
package geo

// Dimensions of the nominal plotting plane. The projection targets this
// plane; callers scale the result down to whatever viewport they render.
const (
	PlaneWidth  = 1000.0
	PlaneHeight = 600.0
)

// Project maps a latitude/longitude pair onto the plotting plane using a
// fixed linear transform covering the continental US: longitude -130..-70
// spans the x axis, latitude 50..25 spans the y axis (north at the top).
//
// The function is total: coordinates outside that window produce off-plane
// values rather than an error, and the result is deliberately not clamped.
func Project(lat, lon float64) (x, y float64) {
	x = ((lon + 130) / 60) * PlaneWidth
	y = ((50 - lat) / 25) * PlaneHeight
	return x, y
}

// Scale converts plane coordinates to a cell position in a cols x rows
// viewport. Positions are clamped to the viewport so off-plane projections
// still land on a drawable cell.
func Scale(x, y float64, cols, rows int) (col, row int) {
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	col = int(x / PlaneWidth * float64(cols))
	row = int(y / PlaneHeight * float64(rows))
	if col < 0 {
		col = 0
	}
	if col >= cols {
		col = cols - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= rows {
		row = rows - 1
	}
	return col, row
}
