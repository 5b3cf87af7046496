// Package spp implements a guillotine-style strip-packing engine for
// rectangular parts grouped by material thickness and priority. A single
// sheet of fixed width is partitioned into contiguous sub-strips along the
// length axis, one per thickness; inside each sub-strip parts are packed
// heuristically in priority order. Because material laid out at one
// thickness is physically rolled to another, lengths are converted between
// thickness classes through the deformation law in package deform.
package spp

import (
	"fmt"
	"sort"

	"github.com/redb0/sbppprg/deform"
	"github.com/redb0/sbppprg/model"
)

// Settings holds the packing configuration.
type Settings struct {
	// Sorting picks the worklist order: descending width or descending
	// length of the normalized parts.
	Sorting SortKey
	// Strain is the dimensionless correction factor of the deformation law.
	// Values above 1 reserve extra length.
	Strain float64
	// Rounding is the caller-supplied rounding function, applied when part
	// dimensions are rescaled between thicknesses (see Packer.Scale). The
	// scheduler's own length accounting uses fixed precisions: deformed
	// available lengths round to 1 decimal, back-deformed consumption to 4.
	Rounding deform.Rounding
}

// DefaultSettings returns the default configuration: sort by width, no
// strain correction, no rounding.
func DefaultSettings() Settings {
	return Settings{Sorting: SortWidth, Strain: 1}
}

// Packer runs the thickness- and priority-aware packing schedule.
type Packer struct {
	settings Settings
}

// New returns a Packer. Zero-valued settings fields fall back to defaults so
// that New(Settings{}) behaves like New(DefaultSettings()).
func New(settings Settings) *Packer {
	if settings.Sorting == "" {
		settings.Sorting = SortWidth
	}
	if settings.Strain == 0 {
		settings.Strain = 1
	}
	return &Packer{settings: settings}
}

// Result is the outcome of a Pack call.
type Result struct {
	// Placements holds the placed rectangles per thickness and priority, in
	// sheet coordinates local to each thickness sub-strip.
	Placements model.PlacementSet
	// Unplaced holds the indices of parts that did not fit, per thickness
	// and priority, indexing into the caller's input slices.
	Unplaced model.IndexSet
	// StripUsed maps each visited thickness to the length its sub-strip
	// consumed, expressed in that thickness's own deformed coordinates.
	StripUsed map[float64]float64
	// Remaining is the residual sheet length in reference-thickness units.
	// Remaining equal to the input length signals that nothing was placed.
	Remaining float64
	// Reference is the thickness the sheet length is denominated at.
	Reference float64
}

// Pack partitions a width x length sheet among the thickness classes of
// parts and packs each class in priority order. The sheet length is
// denominated at the reference thickness: the largest thickness owning parts
// of the globally smallest priority.
//
// Thickness/priority pairs are visited by ascending priority, then by
// descending thickness. For each pair the unbounded packer probes the length
// the remaining top-priority parts demand; if the demand exceeds the
// thickness-deformed budget the probe is rolled back and the bounded packer
// fills a fixed rectangle instead. The consumed length, converted back to
// reference units, is deducted from the remaining sheet length after every
// thickness.
//
// The input set is deep-copied; the caller's slices are never modified.
func (pk *Packer) Pack(width, length float64, parts model.Set) (*Result, error) {
	if width <= 0 || length <= 0 {
		return nil, fmt.Errorf("%w, got %gx%g", ErrSheetSize, width, length)
	}
	if pk.settings.Strain <= 0 {
		return nil, fmt.Errorf("%w, got %g", ErrStrain, pk.settings.Strain)
	}
	if err := validateParts(parts); err != nil {
		return nil, err
	}

	ref := referenceThickness(parts)

	work := parts.Clone()
	indices, err := sortParts(work, pk.settings.Sorting, nil)
	if err != nil {
		return nil, err
	}

	type pair struct {
		h float64
		p int
	}
	var order []pair
	for h, group := range work {
		for p, list := range group {
			if len(list) > 0 {
				order = append(order, pair{h: h, p: p})
			}
		}
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].p != order[j].p {
			return order[i].p < order[j].p
		}
		return order[i].h > order[j].h
	})

	res := model.PlacementSet{}
	marking := make(map[float64]float64)
	remaining := length

	for _, hp := range order {
		h := hp.h
		// The bucket may have been drained by recursive back-filling during
		// an earlier visit of this thickness.
		if _, seen := res[h]; seen && len(indices[h][hp.p]) == 0 {
			continue
		}
		if _, ok := marking[h]; !ok {
			marking[h] = 0
		}
		curY := marking[h]
		group := work[h]

		avail := remaining
		if h != ref {
			avail = deform.Length(remaining, ref, h, pk.settings.Strain, deform.RoundTo(1))
		}

		// Probe with the unbounded packer to measure demand.
		l, rect := PackStrip(width, group, indices[h], 0, curY)
		if l > avail {
			// Demand exceeds the budget: roll the probe back and fill a
			// bounded rectangle instead.
			restoreIndices(indices[h], rect)
			if _, err := sortParts(work, pk.settings.Sorting, indices); err != nil {
				return nil, err
			}
			upper, bounded := PackBounded(width, remaining, group, indices[h], 0, curY)
			if upper == 0 {
				continue
			}
			rect = bounded
			l = upper - curY
		}

		marking[h] += l

		if existing, ok := res[h]; ok {
			for p, rects := range rect {
				existing[p] = append(existing[p], rects...)
			}
		} else {
			res[h] = rect
		}

		remaining -= deform.Back(l, ref, h, pk.settings.Strain, deform.RoundTo(4))
		if remaining == 0 {
			break
		}
	}

	return &Result{
		Placements: res,
		Unplaced:   indices,
		StripUsed:  marking,
		Remaining:  remaining,
		Reference:  ref,
	}, nil
}

// Scale rescales every part of the set to the thickness h1 using the
// packer's strain and rounding settings. Pass h1 = 0 to scale to the largest
// thickness present.
func (pk *Packer) Scale(parts model.Set, h1 float64) model.Set {
	return deform.ScaleSet(parts, h1, pk.settings.Strain, pk.settings.Rounding)
}

// referenceThickness picks the thickness the sheet length is denominated at:
// among the thicknesses whose smallest non-empty priority is globally
// minimal, the largest one.
func referenceThickness(parts model.Set) float64 {
	var (
		ref   float64
		refP  int
		found bool
	)
	for h, group := range parts {
		minP, ok := 0, false
		for p, list := range group {
			if len(list) == 0 {
				continue
			}
			if !ok || p < minP {
				minP, ok = p, true
			}
		}
		if !ok {
			continue
		}
		if !found || minP < refP || (minP == refP && h > ref) {
			ref, refP, found = h, minP, true
		}
	}
	return ref
}

// restoreIndices reinserts the indices of rolled-back placements into their
// worklists. Priorities are walked in ascending order so the reinsertion
// order, and with it the stable re-sort that follows, is deterministic.
func restoreIndices(indices model.IndexGroup, placed model.Placements) {
	for _, p := range placed.Priorities() {
		for _, r := range placed[p] {
			indices[p] = append(indices[p], r.Idx)
		}
	}
}

// validateParts rejects parts with non-positive dimensions.
func validateParts(parts model.Set) error {
	for _, h := range parts.Thicknesses() {
		group := parts[h]
		for _, p := range group.Priorities() {
			for i, r := range group[p] {
				if r.W <= 0 || r.L <= 0 {
					return fmt.Errorf("%w: part %d of thickness %g priority %d is %gx%g",
						ErrPartSize, i, h, p, r.W, r.L)
				}
			}
		}
	}
	return nil
}
