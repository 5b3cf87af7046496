package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/redb0/sbppprg/model"
	"github.com/redb0/sbppprg/spp"
)

const (
	cutListSheet = "Cut List"
	summarySheet = "Summary"
)

// Excel writes the packing result as a workbook: a cut-list sheet with one
// row per part (placed or not) and a per-thickness summary sheet. parts must
// be the set that was packed, so unplaced indices resolve to dimensions.
func Excel(path string, parts model.Set, res *spp.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", cutListSheet)
	if err := writeCutList(f, parts, res); err != nil {
		return err
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("export: create summary sheet: %w", err)
	}
	if err := writeSummary(f, res); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeCutList(f *excelize.File, parts model.Set, res *spp.Result) error {
	headers := []string{"Thickness", "Priority", "Part", "Width", "Length", "X", "Y", "Placed"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("export: cut list header: %w", err)
		}
		if err := f.SetCellValue(cutListSheet, cell, h); err != nil {
			return fmt.Errorf("export: cut list header: %w", err)
		}
	}

	row := 2
	writeRow := func(values ...interface{}) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(cutListSheet, cell, v); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	thicknesses := make([]float64, 0, len(res.Placements))
	for h := range res.Placements {
		thicknesses = append(thicknesses, h)
	}
	sortDescending(thicknesses)

	for _, h := range thicknesses {
		group := res.Placements[h]
		for _, p := range group.Priorities() {
			for _, r := range group[p] {
				if err := writeRow(h, p, r.Idx, r.W, r.L, r.X, r.Y, true); err != nil {
					return fmt.Errorf("export: cut list row: %w", err)
				}
			}
		}
	}

	unplacedThicknesses := make([]float64, 0, len(res.Unplaced))
	for h := range res.Unplaced {
		unplacedThicknesses = append(unplacedThicknesses, h)
	}
	sortDescending(unplacedThicknesses)

	for _, h := range unplacedThicknesses {
		group := res.Unplaced[h]
		for _, p := range group.Priorities() {
			for _, idx := range group[p] {
				part := parts[h][p][idx]
				if err := writeRow(h, p, idx, part.W, part.L, "", "", false); err != nil {
					return fmt.Errorf("export: cut list row: %w", err)
				}
			}
		}
	}

	return nil
}

func writeSummary(f *excelize.File, res *spp.Result) error {
	headers := []string{"Thickness", "Strip length", "Filled area", "Parts"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("export: summary header: %w", err)
		}
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return fmt.Errorf("export: summary header: %w", err)
		}
	}

	thicknesses := make([]float64, 0, len(res.StripUsed))
	for h := range res.StripUsed {
		thicknesses = append(thicknesses, h)
	}
	sortDescending(thicknesses)

	areas := res.Placements.Areas()
	row := 2
	for _, h := range thicknesses {
		count := 0
		for _, rects := range res.Placements[h] {
			count += len(rects)
		}
		values := []interface{}{h, res.StripUsed[h], areas[h], count}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("export: summary row: %w", err)
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return fmt.Errorf("export: summary row: %w", err)
			}
		}
		row++
	}

	row++
	refCell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("export: summary footer: %w", err)
	}
	if err := f.SetCellValue(summarySheet, refCell, fmt.Sprintf("Remaining at thickness %g", res.Reference)); err != nil {
		return fmt.Errorf("export: summary footer: %w", err)
	}
	remCell, err := excelize.CoordinatesToCellName(2, row)
	if err != nil {
		return fmt.Errorf("export: summary footer: %w", err)
	}
	if err := f.SetCellValue(summarySheet, remCell, res.Remaining); err != nil {
		return fmt.Errorf("export: summary footer: %w", err)
	}

	return nil
}
