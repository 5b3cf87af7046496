// Package importer reads part lists from CSV and Excel files. It supports
// automatic delimiter detection, flexible column mapping and
// case-insensitive header recognition, and groups the parsed parts by
// thickness and priority.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/redb0/sbppprg/model"
)

// Result holds the outcome of an import operation. Row-level failures are
// collected in Errors and do not abort the import.
type Result struct {
	Set      model.Set
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Thickness int
	Priority  int
	Width     int
	Length    int
	Quantity  int
}

// headerAliases maps canonical column names to their accepted aliases (all
// lowercase).
var headerAliases = map[string][]string{
	"thickness": {"thickness", "h", "height", "gauge", "material"},
	"priority":  {"priority", "p", "prio", "order", "urgency"},
	"width":     {"width", "w", "x"},
	"length":    {"length", "len", "l", "y"},
	"quantity":  {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe; the delimiter
// producing the most consistent column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping. Matching
// is case-insensitive against the known aliases of each role. Returns the
// mapping and true if a header was detected, or the default positional
// mapping (thickness, priority, width, length, quantity) and false.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Thickness: -1,
		Priority:  -1,
		Width:     -1,
		Length:    -1,
		Quantity:  -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "thickness":
					if mapping.Thickness == -1 {
						mapping.Thickness = i
					}
				case "priority":
					if mapping.Priority == -1 {
						mapping.Priority = i
					}
				case "width":
					if mapping.Width == -1 {
						mapping.Width = i
					}
				case "length":
					if mapping.Length == -1 {
						mapping.Length = i
					}
				case "quantity":
					if mapping.Quantity == -1 {
						mapping.Quantity = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{
			Thickness: 0,
			Priority:  1,
			Width:     2,
			Length:    3,
			Quantity:  4,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a part and its grouping keys from a row. The returned
// quantity is 1 when the quantity column is absent or empty.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (h float64, p int, size model.Size, qty int, errMsg string) {
	hStr := getCell(row, mapping.Thickness)
	if hStr == "" {
		return 0, 0, model.Size{}, 0, fmt.Sprintf("%s: missing thickness value", rowLabel)
	}
	h, err := strconv.ParseFloat(hStr, 64)
	if err != nil || h <= 0 {
		return 0, 0, model.Size{}, 0, fmt.Sprintf("%s: invalid thickness %q", rowLabel, hStr)
	}

	pStr := getCell(row, mapping.Priority)
	if pStr == "" {
		return 0, 0, model.Size{}, 0, fmt.Sprintf("%s: missing priority value", rowLabel)
	}
	p, err = strconv.Atoi(pStr)
	if err != nil || p <= 0 {
		return 0, 0, model.Size{}, 0, fmt.Sprintf("%s: invalid priority %q", rowLabel, pStr)
	}

	wStr := getCell(row, mapping.Width)
	if wStr == "" {
		return 0, 0, model.Size{}, 0, fmt.Sprintf("%s: missing width value", rowLabel)
	}
	w, err := strconv.ParseFloat(wStr, 64)
	if err != nil {
		return 0, 0, model.Size{}, 0, fmt.Sprintf("%s: invalid width %q", rowLabel, wStr)
	}

	lStr := getCell(row, mapping.Length)
	if lStr == "" {
		return 0, 0, model.Size{}, 0, fmt.Sprintf("%s: missing length value", rowLabel)
	}
	l, err := strconv.ParseFloat(lStr, 64)
	if err != nil {
		return 0, 0, model.Size{}, 0, fmt.Sprintf("%s: invalid length %q", rowLabel, lStr)
	}

	if w <= 0 || l <= 0 {
		return 0, 0, model.Size{}, 0, fmt.Sprintf("%s: width and length must be positive", rowLabel)
	}

	qty = 1
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		qty, err = strconv.Atoi(qtyStr)
		if err != nil || qty <= 0 {
			return 0, 0, model.Size{}, 0, fmt.Sprintf("%s: invalid quantity %q", rowLabel, qtyStr)
		}
	}

	return h, p, model.Size{W: w, L: l}, qty, ""
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// CSV imports parts from a CSV file. It automatically detects the delimiter
// and maps columns by header names.
func CSV(path string) Result {
	result := Result{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	return importFromRows(records, "line", result.Warnings)
}

// CSVFrom imports parts from a CSV reader with a known delimiter.
func CSVFrom(reader io.Reader, delimiter rune) Result {
	result := Result{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	return importFromRows(records, "line", nil)
}

// Excel imports parts from an .xlsx file. It reads the first sheet and
// auto-detects the column mapping from headers.
func Excel(path string) Result {
	result := Result{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "sheet is empty")
		return result
	}

	return importFromRows(rows, "row", nil)
}

// importFromRows is the shared import logic for CSV and Excel data. It
// detects headers, maps columns, parses each row and expands quantities
// into repeated parts of the same (thickness, priority) bucket.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) Result {
	result := Result{
		Set:      model.Set{},
		Warnings: initialWarnings,
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "detected header row, skipping")

		var missing []string
		if mapping.Thickness == -1 {
			missing = append(missing, "thickness")
		}
		if mapping.Priority == -1 {
			missing = append(missing, "priority")
		}
		if mapping.Width == -1 {
			missing = append(missing, "width")
		}
		if mapping.Length == -1 {
			missing = append(missing, "length")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 4 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][0]), 64); err != nil {
			// First cell is not numeric; treat the row as an unrecognized
			// header and keep the positional mapping.
			startRow = 1
			result.Warnings = append(result.Warnings, "detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		h, p, size, qty, errMsg := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}

		if _, ok := result.Set[h]; !ok {
			result.Set[h] = model.Group{}
		}
		for n := 0; n < qty; n++ {
			result.Set[h][p] = append(result.Set[h][p], size)
		}
	}

	return result
}
