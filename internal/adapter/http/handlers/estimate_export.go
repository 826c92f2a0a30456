package handlers

import (
	"bytes"
	"fmt"

	response "interior_estimator/internal/adapter/http/dto/response"

	"github.com/xuri/excelize/v2"
)

const (
	estimateSheet   = "Estimate"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var estimateExportHeader = []string{"Item", "Amount"}

type exportRow struct {
	Label string
	Value any
}

func residentialExportRows(e response.EstimateResponse) []exportRow {
	rows := make([]exportRow, 0, len(e.Breakdown)+2)
	rows = append(rows, exportRow{Label: "Package", Value: e.Package})
	for _, line := range e.Breakdown {
		rows = append(rows, exportRow{Label: line.Key, Value: line.Amount})
	}
	return append(rows, exportRow{Label: "Total", Value: e.Total})
}

func commercialExportRows(e response.CommercialEstimateResponse) []exportRow {
	return []exportRow{
		{Label: "Space type", Value: e.SpaceType},
		{Label: "Area range (sq ft)", Value: e.AreaBucket},
		{Label: "Rate per sq ft", Value: e.BasePricePerSqFt},
		{Label: "Representative area", Value: e.RepresentativeArea},
		{Label: "Total", Value: e.Total},
	}
}

// generateEstimateExcel renders the rows as a two column workbook. The last
// row is styled as the total.
func generateEstimateExcel(rows []exportRow) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so Close is called explicitly below.

	index, err := f.NewSheet(estimateSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	amountFormat := "#,##0.00"
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &amountFormat,
		Border:       []excelize.Border{{Type: "top", Color: "000000", Style: 2}},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create total style: %w", err)
	}

	for col, header := range estimateExportHeader {
		if err := setCellValue(f, estimateSheet, col+1, 1, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell: %w", err)
		}
	}
	if err := f.SetCellStyle(estimateSheet, "A1", "B1", headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(estimateSheet, "A", "A", 32); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(estimateSheet, "B", "B", 18); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	for i, r := range rows {
		row := i + 2
		if err := setCellValue(f, estimateSheet, 1, row, r.Label); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set label at row %d: %w", row, err)
		}
		if err := setCellValue(f, estimateSheet, 2, row, r.Value); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set value at row %d: %w", row, err)
		}
	}
	if len(rows) > 0 {
		last := fmt.Sprintf("A%d", len(rows)+1)
		lastValue := fmt.Sprintf("B%d", len(rows)+1)
		if err := f.SetCellStyle(estimateSheet, last, lastValue, totalStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set total style: %w", err)
		}
	}

	if err := f.SetPanes(estimateSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}
	return buf.Bytes(), nil
}

func setCellValue(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
