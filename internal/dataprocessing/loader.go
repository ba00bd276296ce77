package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// BannerRows is the fixed number of leading non-data rows in GST report
// exports. The row immediately after the banner is the column header.
const BannerRows = 8

// LoadTable parses an uploaded report stream into a RawTable. The format is
// picked by file extension: .csv goes through encoding/csv, .xls/.xlsx through
// excelize. fileType names the report (Purchase or Sales) for error
// attribution; filename is the name of the uploaded file as sent by the
// client.
func LoadTable(fileType, filename string, r io.Reader) (*RawTable, error) {
	var (
		rows [][]string
		err  error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		rows, err = readCSVRows(r)
	case ".xls", ".xlsx":
		rows, err = readExcelRows(r)
	default:
		err = fmt.Errorf("unsupported file type %q, expected .csv or .xlsx", filepath.Ext(filename))
	}
	if err != nil {
		return nil, NewLoadError(fileType, err)
	}

	table, err := tableAfterBanner(rows)
	if err != nil {
		return nil, NewLoadError(fileType, err)
	}

	slog.Debug("report file loaded",
		slog.String("file_type", fileType),
		slog.String("filename", filename),
		slog.Int("columns", len(table.Columns)),
		slog.Int("rows", len(table.Rows)))

	return table, nil
}

// readCSVRows reads every record from a delimited-text stream. Reports vary
// in row width, so records are not required to be rectangular.
func readCSVRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	return rows, nil
}

// readExcelRows reads the first sheet of a spreadsheet stream.
func readExcelRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet contains no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// tableAfterBanner drops the banner block, takes the next row as the header,
// and pads the remaining rows out to the header width.
func tableAfterBanner(rows [][]string) (*RawTable, error) {
	if len(rows) <= BannerRows {
		return nil, fmt.Errorf("file has %d rows, need data starting after row %d", len(rows), BannerRows)
	}

	header := rows[BannerRows]
	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	data := rows[BannerRows+1:]
	table := &RawTable{
		Columns: columns,
		Rows:    make([][]string, 0, len(data)),
	}
	for _, row := range data {
		if len(row) < len(columns) {
			padded := make([]string, len(columns))
			copy(padded, row)
			row = padded
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
