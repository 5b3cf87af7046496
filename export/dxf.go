package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"

	"github.com/redb0/sbppprg/spp"
)

// dxfStripGap separates neighboring strips in the drawing, in sheet units.
const dxfStripGap = 2.0

// layerColors cycles over the placement layers, one per thickness.
var layerColors = []color.ColorNumber{
	color.Red, color.Yellow, color.Green, color.Cyan, color.Blue, color.Magenta,
}

// DXF writes the packing result as a DXF drawing. Each thickness sub-strip
// is drawn side by side: the strip outline on a shared "Strips" layer and
// the placed rectangles as closed polylines on one layer per thickness.
func DXF(path string, width float64, res *spp.Result) error {
	if len(res.Placements) == 0 {
		return fmt.Errorf("export: no placements to render")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer("Strips", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("export: dxf strips layer: %w", err)
	}

	thicknesses := make([]float64, 0, len(res.Placements))
	for h := range res.Placements {
		thicknesses = append(thicknesses, h)
	}
	sortDescending(thicknesses)

	offsetX := 0.0
	for i, h := range thicknesses {
		stripLen := res.StripUsed[h]

		if err := d.ChangeLayer("Strips"); err != nil {
			return fmt.Errorf("export: dxf strips layer: %w", err)
		}
		if _, err := d.LwPolyline(true,
			[]float64{offsetX, 0},
			[]float64{offsetX + width, 0},
			[]float64{offsetX + width, stripLen},
			[]float64{offsetX, stripLen},
		); err != nil {
			return fmt.Errorf("export: dxf strip outline: %w", err)
		}

		layer := fmt.Sprintf("H%g", h)
		if _, err := d.AddLayer(layer, layerColors[i%len(layerColors)], table.LT_CONTINUOUS, true); err != nil {
			return fmt.Errorf("export: dxf layer %s: %w", layer, err)
		}

		group := res.Placements[h]
		for _, p := range group.Priorities() {
			for _, r := range group[p] {
				if _, err := d.LwPolyline(true,
					[]float64{offsetX + r.X, r.Y},
					[]float64{offsetX + r.Right(), r.Y},
					[]float64{offsetX + r.Right(), r.Top()},
					[]float64{offsetX + r.X, r.Top()},
				); err != nil {
					return fmt.Errorf("export: dxf rectangle: %w", err)
				}
			}
		}

		offsetX += width + dxfStripGap
	}

	return d.SaveAs(path)
}
