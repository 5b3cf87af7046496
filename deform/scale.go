package deform

import "github.com/redb0/sbppprg/model"

// ScaleGroup rescales the length of every part in the group from thickness h
// to thickness h1. Widths are unchanged. The input group is not modified.
func ScaleGroup(g model.Group, h, h1, strain float64, round Rounding) model.Group {
	out := make(model.Group, len(g))
	for p, parts := range g {
		scaled := make([]model.Size, len(parts))
		for i, part := range parts {
			scaled[i] = model.Size{W: part.W, L: Length(part.L, h, h1, strain, round)}
		}
		out[p] = scaled
	}
	return out
}

// ScaleSet rescales every group in the set to a common thickness h1. When h1
// is zero the maximum thickness present in the set is used. Groups already at
// h1 are deep-copied unchanged.
func ScaleSet(s model.Set, h1, strain float64, round Rounding) model.Set {
	if h1 == 0 {
		for h := range s {
			if h > h1 {
				h1 = h
			}
		}
	}

	out := make(model.Set, len(s))
	for h, g := range s {
		if h != h1 {
			out[h] = ScaleGroup(g, h, h1, strain, round)
		} else {
			out[h] = g.Clone()
		}
	}
	return out
}
