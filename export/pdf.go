// Package export writes packing results to exchange formats: PDF layout
// sheets, QR-coded part labels, cut-list workbooks and DXF drawings.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/redb0/sbppprg/model"
	"github.com/redb0/sbppprg/spp"
)

// partColor represents an RGB color for a placed part.
type partColor struct {
	R, G, B int
}

var partColors = []partColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// PDF renders the packing result as a PDF document: one page per thickness
// sub-strip with the scaled layout, followed by a summary page.
func PDF(path string, width float64, res *spp.Result) error {
	if len(res.Placements) == 0 {
		return fmt.Errorf("export: no placements to render")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	thicknesses := make([]float64, 0, len(res.Placements))
	for h := range res.Placements {
		thicknesses = append(thicknesses, h)
	}
	sortDescending(thicknesses)

	for i, h := range thicknesses {
		pdf.AddPage()
		renderStripPage(pdf, width, h, res.StripUsed[h], res.Placements[h], i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, width, thicknesses, res)

	return pdf.OutputFileAndClose(path)
}

func sortDescending(v []float64) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j] > v[j-1]; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}

// renderStripPage draws one thickness sub-strip on the current page.
func renderStripPage(pdf *fpdf.Fpdf, width, thickness, stripLen float64, group model.Placements, pageNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Strip %d: thickness %g (%g x %g)", pageNum, thickness, width, stripLen)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	count := 0
	var used float64
	for _, rects := range group {
		count += len(rects)
		for _, r := range rects {
			used += r.Area()
		}
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	ratio := 0.0
	if stripLen > 0 {
		ratio = used / (stripLen * width) * 100
	}
	stats := fmt.Sprintf("Parts: %d | Used area: %.2f | Strip area: %.2f | Fill: %.1f%%",
		count, used, stripLen*width, ratio)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/width, drawHeight/stripLen)
	canvasW := width * scale
	canvasH := stripLen * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Strip background.
	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	i := 0
	for _, p := range group.Priorities() {
		for _, r := range group[p] {
			col := partColors[i%len(partColors)]
			i++

			// The sheet origin is the lower-left corner; PDF pages grow
			// downward, so y flips.
			pw := r.W * scale
			ph := r.L * scale
			px := offsetX + r.X*scale
			py := offsetY + canvasH - (r.Y+r.L)*scale

			pdf.SetFillColor(col.R, col.G, col.B)
			pdf.SetDrawColor(30, 30, 30)
			pdf.SetLineWidth(0.3)
			pdf.Rect(px, py, pw, ph, "FD")

			if pw > 8 && ph > 6 {
				pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
				pdf.SetTextColor(0, 0, 0)
				label := fmt.Sprintf("p%d #%d", p, r.Idx)
				labelW := pdf.GetStringWidth(label)
				if labelW < pw-1 {
					pdf.SetXY(px+(pw-labelW)/2, py+ph/2-2)
					pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
				}
			}
		}
	}

	drawDimensionAnnotations(pdf, width, stripLen, offsetX, offsetY, canvasW, canvasH)
}

// drawDimensionAnnotations adds width and length labels outside the strip
// rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, width, stripLen, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%g", width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	lenLabel := fmt.Sprintf("%g", stripLen)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	lLabelW := pdf.GetStringWidth(lenLabel)
	pdf.SetXY(offsetX-3-lLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(lLabelW, 4, lenLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws overall statistics and the per-strip breakdown.
func renderSummaryPage(pdf *fpdf.Fpdf, width float64, thicknesses []float64, res *spp.Result) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Packing Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	unplaced := 0
	for _, group := range res.Unplaced {
		for _, idxs := range group {
			unplaced += len(idxs)
		}
	}

	summaryItems := []struct {
		label string
		value string
	}{
		{"Strips", fmt.Sprintf("%d", len(thicknesses))},
		{"Parts placed", fmt.Sprintf("%d", res.Placements.Count())},
		{"Parts unplaced", fmt.Sprintf("%d", unplaced)},
		{"Reference thickness", fmt.Sprintf("%g", res.Reference)},
		{"Remaining length", fmt.Sprintf("%.4f", res.Remaining)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	colWidths := []float64{35, 40, 30, 45, 35}
	headers := []string{"Thickness", "Strip length", "Parts", "Filled area", "Fill"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	areas := res.Placements.Areas()
	pdf.SetFont("Helvetica", "", 9)
	for i, h := range thicknesses {
		count := 0
		for _, rects := range res.Placements[h] {
			count += len(rects)
		}
		ratio := 0.0
		if used := res.StripUsed[h]; used > 0 {
			ratio = areas[h] / (used * width) * 100
		}
		rowData := []string{
			fmt.Sprintf("%g", h),
			fmt.Sprintf("%.2f", res.StripUsed[h]),
			fmt.Sprintf("%d", count),
			fmt.Sprintf("%.2f", areas[h]),
			fmt.Sprintf("%.1f%%", ratio),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if unplaced > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, fmt.Sprintf("WARNING: %d parts not placed", unplaced), "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
}

// labelFontSize returns an appropriate font size based on the rectangle
// dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
