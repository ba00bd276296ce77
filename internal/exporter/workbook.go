package exporter

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"gstpro/internal/dataprocessing"
)

// Output artifact constants shared with the HTTP layer.
const (
	OutputFilename = "Processed_Data.xlsx"
	OutputMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	PurchaseSheet = "Purchase Data"
	SalesSheet    = "Sales Data"
)

// WorkbookWriter serializes processed reports into a single multi-sheet
// Excel workbook.
type WorkbookWriter struct {
	logger *slog.Logger
}

// NewWorkbookWriter creates a new workbook writer instance
func NewWorkbookWriter(logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{
		logger: logger.With(slog.String("component", "workbook_writer")),
	}
}

// Write builds the two-sheet output workbook and returns its bytes. Both
// tables must be present; the caller is responsible for never exporting a
// partial result.
func (w *WorkbookWriter) Write(purchase, sales *dataprocessing.CleanTable) ([]byte, error) {
	if purchase == nil || sales == nil {
		return nil, fmt.Errorf("both purchase and sales tables are required")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeSheet(f, PurchaseSheet, purchase); err != nil {
		return nil, err
	}
	if err := w.writeSheet(f, SalesSheet, sales); err != nil {
		return nil, err
	}

	// The default sheet only exists because excelize requires one at creation
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	w.logger.Info("workbook generated",
		slog.Int("purchase_rows", len(purchase.Rows)),
		slog.Int("sales_rows", len(sales.Rows)),
		slog.Int("bytes", buf.Len()))

	return buf.Bytes(), nil
}

// writeSheet creates a named sheet and fills it with the table's header and
// records, in canonical column order.
func (w *WorkbookWriter) writeSheet(f *excelize.File, name string, table *dataprocessing.CleanTable) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}

	headers := dataprocessing.Headers()
	if err := w.writeRow(f, name, 1, headers); err != nil {
		return err
	}

	for i, record := range table.Records() {
		if err := w.writeRow(f, name, i+2, record); err != nil {
			return err
		}
	}

	// Widen the party and amount columns so the output opens readable
	if err := f.SetColWidth(name, "B", "F", 18); err != nil {
		return fmt.Errorf("failed to set column widths on %q: %w", name, err)
	}
	return nil
}

func (w *WorkbookWriter) writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", rowNum, err)
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("failed to write row %d on %q: %w", rowNum, sheet, err)
	}
	return nil
}
