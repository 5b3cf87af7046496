// Package model defines the part and placement types shared by the packing
// engine, the reporting helpers and the exporters.
package model

// Size holds the raw dimensions of a part to be cut. W is the extent along
// the sheet width axis and L along the length axis; the engine normalizes
// every part so that W <= L before packing.
type Size struct {
	W float64 `json:"w"`
	L float64 `json:"l"`
}

// Area returns the part area.
func (s Size) Area() float64 {
	return s.W * s.L
}

// Group maps a priority (smaller = more urgent) to the parts requested at
// that priority. Map iteration order is unspecified in Go, so every consumer
// walks priorities through Priorities().
type Group map[int][]Size

// Set maps a material thickness to the group of parts of that thickness.
type Set map[float64]Group

// Rectangle is a placed part: lower-left corner (X, Y) in sheet coordinates,
// W along the width axis, L along the length axis. Idx is the part's position
// within its (thickness, priority) input slice and survives normalization
// and sorting unchanged.
type Rectangle struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	W   float64 `json:"w"`
	L   float64 `json:"l"`
	Idx int     `json:"idx"`
}

// Area returns the placed area.
func (r Rectangle) Area() float64 {
	return r.W * r.L
}

// Top returns the upper edge coordinate y + l.
func (r Rectangle) Top() float64 {
	return r.Y + r.L
}

// Right returns the right edge coordinate x + w.
func (r Rectangle) Right() float64 {
	return r.X + r.W
}

// Placements maps a priority to the rectangles placed from that bucket.
type Placements map[int][]Rectangle

// PlacementSet maps a thickness to its placements.
type PlacementSet map[float64]Placements

// IndexGroup maps a priority to a list of part indices. The engine uses it
// both as the working order of still-unplaced parts and as the unplaced
// result.
type IndexGroup map[int][]int

// IndexSet maps a thickness to its index groups.
type IndexSet map[float64]IndexGroup
