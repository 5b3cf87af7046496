// Package report derives material-usage figures from a packing result:
// per-thickness areas and fill ratios, physical strip lengths, and usable
// leftover strips.
package report

import (
	"github.com/redb0/sbppprg/deform"
	"github.com/redb0/sbppprg/model"
	"github.com/redb0/sbppprg/spp"
)

// Summary collects the usage figures of one packing run.
type Summary struct {
	// SheetArea is the full sheet area width x length in reference units.
	SheetArea float64
	// Required is the total part area requested per thickness.
	Required map[float64]float64
	// Filled is the placed part area per thickness.
	Filled map[float64]float64
	// FillRatio is Filled divided by the sub-strip area marking x width,
	// per thickness.
	FillRatio map[float64]float64
	// Placed and Total count parts.
	Placed int
	Total  int
	// Leftover is the residual sheet length in reference units.
	Leftover float64
}

// Summarize computes the usage summary for a packing of parts onto a
// width x length sheet.
func Summarize(width, length float64, parts model.Set, res *spp.Result) Summary {
	s := Summary{
		SheetArea: width * length,
		Required:  parts.Areas(),
		Filled:    res.Placements.Areas(),
		FillRatio: make(map[float64]float64, len(res.Placements)),
		Placed:    res.Placements.Count(),
		Leftover:  res.Remaining,
	}
	for h, filled := range s.Filled {
		if used := res.StripUsed[h]; used > 0 {
			s.FillRatio[h] = filled / (used * width)
		}
	}
	for _, group := range parts {
		for _, list := range group {
			s.Total += len(list)
		}
	}
	return s
}

// StripLengths returns the physical length of each thickness sub-strip, in
// that thickness's own coordinates. The undistributed tail of the sheet is
// credited to the reference-thickness strip, where the leftover material
// physically remains. The rounding function, when non-nil, is applied to
// every returned length.
func StripLengths(res *spp.Result, round deform.Rounding) map[float64]float64 {
	strips := make(map[float64]float64, len(res.StripUsed))
	for h, l := range res.StripUsed {
		strips[h] = l
	}
	if res.Remaining > 0 {
		strips[res.Reference] += res.Remaining
	}
	if round != nil {
		for h, l := range strips {
			strips[h] = round(l)
		}
	}
	return strips
}
