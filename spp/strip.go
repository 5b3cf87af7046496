package spp

import "github.com/redb0/sbppprg/model"

// PackStrip packs the highest-priority non-empty bucket of one thickness
// into a strip of fixed width and unbounded length starting at (x0, y0).
// Parts are taken in worklist order; each one opens a new row, placed with
// its longer side along the width axis when it fits there, upright
// otherwise. The leftover of every row is back-filled through the recursive
// sub-packer, which may pull parts of any priority. Returns the total length
// consumed beyond y0 and the placements.
func PackStrip(width float64, group model.Group, indices model.IndexGroup, x0, y0 float64) (float64, model.Placements) {
	result := model.Placements{}

	top := -1
	for _, p := range indices.Priorities() {
		if len(indices[p]) > 0 {
			top = p
			break
		}
	}
	if top < 0 {
		return 0, result
	}

	x, y, total := x0, y0, y0
	for len(indices[top]) > 0 {
		idx := indices[top][0]
		indices[top] = indices[top][1:]
		r := group[top][idx]

		// Lay the part down (longer side along the width axis) unless the
		// longer side exceeds the strip width, in which case it stands
		// upright.
		w, l := r.L, r.W
		if r.L > width {
			w, l = r.W, r.L
		}
		result[top] = append(result[top], model.Rectangle{X: x, Y: y, W: w, L: l, Idx: idx})
		x, y = w, total
		total += l
		recursivePack(x, y, width-w, l, group, indices, result)
		x, y = 0, total
	}

	return total - y0, result
}

// PackBounded packs into a width x length rectangle anchored at (x0, y0) by
// handing the whole area to the recursive sub-packer, which honors every
// priority through its best-fit scan. Returns the highest occupied y
// coordinate (0 when nothing fit) and the placements.
func PackBounded(width, length float64, group model.Group, indices model.IndexGroup, x0, y0 float64) (float64, model.Placements) {
	result := model.Placements{}
	recursivePack(x0, y0, width, length, group, indices, result)

	var top float64
	for _, rects := range result {
		for _, r := range rects {
			if r.Top() > top {
				top = r.Top()
			}
		}
	}
	return top, result
}
