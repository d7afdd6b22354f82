package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateBOMExcel creates an Excel file from the given BOMExport and
// returns the file contents as a byte slice.
func GenerateBOMExcel(data BOMExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Determine sheet name (max 31 chars).
	sheetName := data.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "BOM"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 16, 40, 14, 10, 8, 16, 18}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	st, err := newBOMStyles(f)
	if err != nil {
		return nil, err
	}

	// ── Header Rows (1-3) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", st.title)

	subtitle := data.ProductType
	if data.Area != "" {
		subtitle += " · " + data.Area
	}
	if data.ReferenceNumber != "" {
		subtitle += " · Ref: " + data.ReferenceNumber
	}
	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge subtitle: %w", err)
	}
	f.SetCellValue(sheetName, "A2", sanitizeExcelCell(subtitle))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", st.subtitle)

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Date: "+data.CreatedDate)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", st.subtitle)

	// ── Row 5: Column Headers ───────────────────────────────────────────

	headers := []string{"#", "SKU", "Description", "Source", "Qty", "UOM", "Unit Price", "Extended Price"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s5", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", st.header)

	// ── Data Rows (starting row 6) ──────────────────────────────────────

	row := 6
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, r.Index)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.SKU))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Description))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.Source))
		f.SetCellValue(sheetName, "E"+rowStr, FormatQty(r.Qty))
		f.SetCellValue(sheetName, "F"+rowStr, sanitizeExcelCell(r.UOM))
		f.SetCellValue(sheetName, "G"+rowStr, FormatMoney(r.UnitPrice, data.Currency))
		f.SetCellValue(sheetName, "H"+rowStr, FormatMoney(r.ExtendedPrice, data.Currency))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, st.item)
		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++
	summary := []struct {
		label  string
		amount float64
	}{
		{"Subtotal:", data.Subtotal},
		{"Total:", data.Total},
	}
	for _, line := range summary {
		label := fmt.Sprintf("G%d", row)
		value := fmt.Sprintf("H%d", row)
		f.SetCellValue(sheetName, label, line.label)
		f.SetCellStyle(sheetName, label, label, st.summaryLabel)
		f.SetCellValue(sheetName, value, FormatMoney(line.amount, data.Currency))
		f.SetCellStyle(sheetName, value, value, st.summaryValue)
		row++
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

type bomStyles struct {
	title, subtitle, header, item, summaryLabel, summaryValue int
}

func newBOMStyles(f *excelize.File) (bomStyles, error) {
	var st bomStyles
	bold := func(size float64) *excelize.Font { return &excelize.Font{Bold: true, Size: size} }
	defs := []struct {
		name  string
		dst   *int
		style excelize.Style
	}{
		{"title", &st.title, excelize.Style{Font: bold(16)}},
		{"subtitle", &st.subtitle, excelize.Style{Font: &excelize.Font{Size: 11}}},
		{"header", &st.header, excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorders(),
		}},
		{"item", &st.item, excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()}},
		{"summary label", &st.summaryLabel, excelize.Style{Font: bold(11), Alignment: &excelize.Alignment{Horizontal: "right"}}},
		{"summary value", &st.summaryValue, excelize.Style{Font: bold(11)}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(&d.style)
		if err != nil {
			return bomStyles{}, fmt.Errorf("create %s style: %w", d.name, err)
		}
		*d.dst = id
	}
	return st, nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
