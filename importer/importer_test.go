package importer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/redb0/sbppprg/model"
)

func TestCSVFrom_HeaderMapping(t *testing.T) {
	data := "thickness,priority,width,length,qty\n" +
		"3.0,1,5,3,1\n" +
		"3.0,1,10,10,1\n" +
		"1.0,2,7,9,1\n"

	result := CSVFrom(strings.NewReader(data), ',')

	require.Empty(t, result.Errors)
	assert.Equal(t, model.Set{
		3.0: {1: {{W: 5, L: 3}, {W: 10, L: 10}}},
		1.0: {2: {{W: 7, L: 9}}},
	}, result.Set)
}

func TestCSVFrom_QuantityExpansion(t *testing.T) {
	data := "thickness,priority,width,length,qty\n" +
		"2.0,1,5,3,3\n"

	result := CSVFrom(strings.NewReader(data), ',')

	require.Empty(t, result.Errors)
	assert.Equal(t, []model.Size{{W: 5, L: 3}, {W: 5, L: 3}, {W: 5, L: 3}}, result.Set[2.0][1])
}

func TestCSVFrom_MissingQuantityDefaultsToOne(t *testing.T) {
	data := "thickness,priority,width,length\n" +
		"2.0,1,5,3\n"

	result := CSVFrom(strings.NewReader(data), ',')

	require.Empty(t, result.Errors)
	assert.Len(t, result.Set[2.0][1], 1)
}

func TestCSVFrom_PositionalMapping(t *testing.T) {
	data := "3.0,1,5,3\n2.0,2,4,6\n"

	result := CSVFrom(strings.NewReader(data), ',')

	require.Empty(t, result.Errors)
	assert.Equal(t, []model.Size{{W: 5, L: 3}}, result.Set[3.0][1])
	assert.Equal(t, []model.Size{{W: 4, L: 6}}, result.Set[2.0][2])
}

func TestCSVFrom_CollectsRowErrors(t *testing.T) {
	data := "thickness,priority,width,length\n" +
		"bad,1,5,3\n" +
		"2.0,0,5,3\n" +
		"2.0,1,-5,3\n" +
		"2.0,1,5,3\n"

	result := CSVFrom(strings.NewReader(data), ',')

	assert.Len(t, result.Errors, 3)
	assert.Len(t, result.Set[2.0][1], 1)
}

func TestDetectCSVDelimiter(t *testing.T) {
	assert.Equal(t, ';', DetectCSVDelimiter([]byte("a;b;c\n1;2;3\n")))
	assert.Equal(t, '\t', DetectCSVDelimiter([]byte("a\tb\tc\n1\t2\t3\n")))
	assert.Equal(t, ',', DetectCSVDelimiter([]byte("a,b,c\n1,2,3\n")))
}

func TestDetectColumns_Aliases(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"H", "Prio", "W", "Len", "Pcs"})
	require.True(t, hasHeader)
	assert.Equal(t, 0, mapping.Thickness)
	assert.Equal(t, 1, mapping.Priority)
	assert.Equal(t, 2, mapping.Width)
	assert.Equal(t, 3, mapping.Length)
	assert.Equal(t, 4, mapping.Quantity)
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"3.0", "1", "5", "3"})
	assert.False(t, hasHeader)
	assert.Equal(t, 0, mapping.Thickness)
	assert.Equal(t, 4, mapping.Quantity)
}

func TestCSVFrom_MissingRequiredColumn(t *testing.T) {
	data := "thickness,priority,width\n3.0,1,5\n"

	result := CSVFrom(strings.NewReader(data), ',')

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "length")
}

func TestExcel_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parts.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Thickness", "Priority", "Width", "Length", "Qty"},
		{3.0, 1, 5, 3, 1},
		{3.0, 1, 10, 10, 2},
		{1.0, 2, 7, 9, 1},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result := Excel(path)

	require.Empty(t, result.Errors)
	assert.Len(t, result.Set[3.0][1], 3)
	assert.Equal(t, []model.Size{{W: 7, L: 9}}, result.Set[1.0][2])
}

func TestExcel_MissingFile(t *testing.T) {
	result := Excel(filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Len(t, result.Errors, 1)
}
