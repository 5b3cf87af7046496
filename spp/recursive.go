package spp

import (
	"math"

	"github.com/redb0/sbppprg/model"
)

// Fit cases for a candidate part in a free rectangle, in order of
// preference. Lower is better.
const (
	fitExact   = 1 // candidate equals the free rectangle in some orientation
	fitWidth   = 2 // width matches exactly, length is shorter
	fitLength  = 3 // length matches exactly, width is shorter
	fitSmaller = 4 // strictly smaller in both dimensions
	fitNone    = 5 // does not fit
)

// candidate is the outcome of scanning one priority bucket for the part that
// best fills a free rectangle.
type candidate struct {
	fit     int
	rotated bool
	idx     int
}

// bestCandidate walks the bucket's worklist in order and returns the entry
// with the lowest fit case for a free w x l rectangle, trying both
// orientations of every part. Ties keep the earlier worklist entry.
func bestCandidate(w, l float64, indices []int, parts []model.Size) candidate {
	best := candidate{fit: fitNone + 1, idx: -1}
	for _, idx := range indices {
		r := parts[idx]
		for j := 0; j < 2; j++ {
			cw, cl := r.W, r.L
			if j == 1 {
				cw, cl = r.L, r.W
			}
			switch {
			case best.fit > fitExact && cw == w && cl == l:
				best = candidate{fit: fitExact, rotated: j == 1, idx: idx}
			case best.fit > fitWidth && cw == w && cl < l:
				best = candidate{fit: fitWidth, rotated: j == 1, idx: idx}
			case best.fit > fitLength && cw < w && cl == l:
				best = candidate{fit: fitLength, rotated: j == 1, idx: idx}
			case best.fit > fitSmaller && cw < w && cl < l:
				best = candidate{fit: fitSmaller, rotated: j == 1, idx: idx}
			case best.fit > fitNone:
				best = candidate{fit: fitNone, rotated: j == 1, idx: idx}
			}
		}
		if best.fit == fitExact {
			break
		}
	}
	return best
}

// recursivePack fills the free rectangle at (x, y) of size w x l with at most
// one part and recurses into the leftover sub-rectangles produced by the
// guillotine split. Priority buckets are scanned in ascending order; the
// first bucket whose best candidate fits wins. The chosen index is removed
// from its worklist and the placement appended to result.
func recursivePack(x, y, w, l float64, group model.Group, indices model.IndexGroup, result model.Placements) {
	for _, p := range group.Priorities() {
		c := bestCandidate(w, l, indices[p], group[p])
		if c.fit >= fitNone {
			continue
		}

		r := group[p][c.idx]
		omega, d := r.W, r.L
		if c.rotated {
			omega, d = r.L, r.W
		}
		result[p] = append(result[p], model.Rectangle{X: x, Y: y, W: omega, L: d, Idx: c.idx})
		indices[p] = removeIndex(indices[p], c.idx)

		switch c.fit {
		case fitWidth:
			recursivePack(x, y+d, w, l-d, group, indices, result)
		case fitLength:
			recursivePack(x+omega, y, w-omega, l, group, indices, result)
		case fitSmaller:
			minW, minL := smallestRemaining(group, indices)
			// Rotation makes the two interchangeable.
			if minL < minW {
				minW = minL
			}
			minL = minW
			switch {
			case w-omega < minW:
				recursivePack(x, y+d, w, l-d, group, indices, result)
			case l-d < minL:
				recursivePack(x+omega, y, w-omega, l, group, indices, result)
			case omega < minW:
				recursivePack(x+omega, y, w-omega, d, group, indices, result)
				recursivePack(x, y+d, w, l-d, group, indices, result)
			default:
				recursivePack(x, y+d, omega, l-d, group, indices, result)
				recursivePack(x+omega, y, w-omega, l, group, indices, result)
			}
		}
		return
	}
}

// smallestRemaining returns the smallest width and length among every part
// still on a worklist of the group.
func smallestRemaining(group model.Group, indices model.IndexGroup) (float64, float64) {
	minW, minL := math.MaxFloat64, math.MaxFloat64
	for p, idxs := range indices {
		for _, idx := range idxs {
			r := group[p][idx]
			if r.W < minW {
				minW = r.W
			}
			if r.L < minL {
				minL = r.L
			}
		}
	}
	return minW, minL
}

// removeIndex removes the first occurrence of v from list.
func removeIndex(list []int, v int) []int {
	for i, x := range list {
		if x == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
