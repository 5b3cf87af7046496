package report

import (
	"sort"

	"github.com/google/uuid"

	"github.com/redb0/sbppprg/spp"
)

// Remnant is a usable rectangular leftover strip of one thickness.
type Remnant struct {
	ID        string  `json:"id"`
	Thickness float64 `json:"thickness"`
	// Y is the lower edge of the remnant inside its thickness sub-strip.
	Y float64 `json:"y"`
	// Width and Length are the usable dimensions, Length in the remnant's
	// own thickness coordinates.
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

// Area returns the remnant area.
func (r Remnant) Area() float64 {
	return r.Width * r.Length
}

// MinRemnantLength is the smallest strip length worth keeping; shorter
// remnants count as waste.
const MinRemnantLength = 0.5

// Remnants identifies the usable leftover strips of a packing run: per
// thickness, the band between the highest placement and the top of the
// sub-strip marking, plus the undistributed tail of the sheet at the
// reference thickness. Remnants are sorted by area, largest first.
func Remnants(width float64, res *spp.Result) []Remnant {
	var remnants []Remnant

	for h, group := range res.Placements {
		var top float64
		for _, rects := range group {
			for _, r := range rects {
				if r.Top() > top {
					top = r.Top()
				}
			}
		}
		band := res.StripUsed[h] - top
		if band >= MinRemnantLength {
			remnants = append(remnants, Remnant{
				ID:        uuid.New().String()[:8],
				Thickness: h,
				Y:         top,
				Width:     width,
				Length:    band,
			})
		}
	}

	if res.Remaining >= MinRemnantLength {
		remnants = append(remnants, Remnant{
			ID:        uuid.New().String()[:8],
			Thickness: res.Reference,
			Y:         res.StripUsed[res.Reference],
			Width:     width,
			Length:    res.Remaining,
		})
	}

	sort.Slice(remnants, func(i, j int) bool {
		return remnants[i].Area() > remnants[j].Area()
	})
	return remnants
}

// TotalRemnantArea sums the area of all remnants.
func TotalRemnantArea(remnants []Remnant) float64 {
	var total float64
	for _, r := range remnants {
		total += r.Area()
	}
	return total
}
