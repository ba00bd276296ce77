package dataprocessing

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// bannerCSV builds a CSV stream with the standard 8-row banner block in
// front of the given header and data lines.
func bannerCSV(lines ...string) string {
	var b strings.Builder
	for i := 0; i < BannerRows; i++ {
		b.WriteString("GSTR Report Banner\n")
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func TestLoadTableCSV(t *testing.T) {
	data := bannerCSV(
		"Invoice Date,Voucher No.,Receiver Name,Taxable value,Rate",
		"2024-01-01,INV001,Acme Co,1000,18",
		"2024-01-02,INV002,Beta Ltd,2000,12",
	)

	table, err := LoadTable("Purchase", "purchases.csv", strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"Invoice Date", "Voucher No.", "Receiver Name", "Taxable value", "Rate"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"2024-01-01", "INV001", "Acme Co", "1000", "18"}, table.Rows[0])
}

func TestLoadTableTrimsHeaderNames(t *testing.T) {
	data := bannerCSV(
		"  Invoice Date , Voucher No.  ,Receiver Name,Taxable value, Rate ",
		"2024-01-01,INV001,Acme Co,1000,18",
	)

	table, err := LoadTable("Purchase", "purchases.csv", strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"Invoice Date", "Voucher No.", "Receiver Name", "Taxable value", "Rate"}, table.Columns)
}

func TestLoadTablePadsShortRows(t *testing.T) {
	data := bannerCSV(
		"Invoice Date,Voucher No.,Receiver Name,Taxable value,Rate",
		"2024-01-01,INV001",
	)

	table, err := LoadTable("Sales", "sales.csv", strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"2024-01-01", "INV001", "", "", ""}, table.Rows[0])
}

func TestLoadTableHeaderOnly(t *testing.T) {
	// A file with a header but no data rows is valid and yields zero rows
	data := bannerCSV("Invoice Date,Voucher No.,Receiver Name,Taxable value,Rate")

	table, err := LoadTable("Purchase", "purchases.csv", strings.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}

func TestLoadTableTooFewRows(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty file", data: ""},
		{name: "banner only", data: strings.Repeat("banner line\n", BannerRows)},
		{name: "short banner", data: "line1\nline2\nline3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTable("Purchase", "purchases.csv", strings.NewReader(tt.data))
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, "Purchase", loadErr.File)
		})
	}
}

func TestLoadTableUnsupportedExtension(t *testing.T) {
	_, err := LoadTable("Sales", "sales.pdf", strings.NewReader("whatever"))
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "Sales", loadErr.File)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestLoadTableExcel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i := 0; i < BannerRows; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, "GSTR Report Banner"))
	}
	header := []interface{}{"Invoice Date", "Invoice No.", "Party Name", "Taxable Value", "Rate"}
	require.NoError(t, f.SetSheetRow(sheet, "A9", &header))
	row := []interface{}{"2024-01-01", "INV001", "Acme Co", "1000", "18"}
	require.NoError(t, f.SetSheetRow(sheet, "A10", &row))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	table, err := LoadTable("Purchase", "purchases.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, []string{"Invoice Date", "Invoice No.", "Party Name", "Taxable Value", "Rate"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Acme Co", table.Rows[0][2])
}

func TestLoadTableCorruptExcel(t *testing.T) {
	_, err := LoadTable("Purchase", "purchases.xlsx", strings.NewReader("this is not a spreadsheet"))
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "Purchase", loadErr.File)
}

func TestLoadTableEndToEnd(t *testing.T) {
	// Full pipeline over a realistic CSV export
	data := bannerCSV(
		"Invoice Date,Voucher No.,Receiver Name,Taxable value,Rate",
		"2024-01-01,INV001,Acme Co,1000,18",
		"2024-01-02,INV002,,2000,12",
		"2024-01-03,INV003,Beta Ltd,3000,5",
	)

	table, err := LoadTable("Sales", "sales.csv", strings.NewReader(data))
	require.NoError(t, err)

	clean, err := ExtractReport(table, "Sales")
	require.NoError(t, err)
	require.Len(t, clean.Rows, 2)
	assert.Equal(t, 1, clean.Rows[0].Serial)
	assert.Equal(t, "Acme Co", clean.Rows[0].PartyName)
	assert.Equal(t, 2, clean.Rows[1].Serial)
	assert.Equal(t, "Beta Ltd", clean.Rows[1].PartyName)
}
