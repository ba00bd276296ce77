package exporter

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gstpro/internal/dataprocessing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleTable(rows ...dataprocessing.CleanRow) *dataprocessing.CleanTable {
	return &dataprocessing.CleanTable{Rows: rows}
}

func TestWorkbookWriterWrite(t *testing.T) {
	purchase := sampleTable(
		dataprocessing.CleanRow{Serial: 1, Date: "2024-01-01", InvoiceNo: "INV001", PartyName: "Acme Co", TaxableAmount: "1000", GSTRate: "18%"},
		dataprocessing.CleanRow{Serial: 2, Date: "2024-01-02", InvoiceNo: "INV002", PartyName: "Beta Ltd", TaxableAmount: "2000", GSTRate: "12%"},
	)
	sales := sampleTable(
		dataprocessing.CleanRow{Serial: 1, Date: "2024-02-01", InvoiceNo: "S001", PartyName: "Gamma Inc", TaxableAmount: "500", GSTRate: "5%"},
	)

	writer := NewWorkbookWriter(testLogger())
	data, err := writer.Write(purchase, sales)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{PurchaseSheet, SalesSheet}, f.GetSheetList())

	purchaseRows, err := f.GetRows(PurchaseSheet)
	require.NoError(t, err)
	require.Len(t, purchaseRows, 3)
	assert.Equal(t, dataprocessing.Headers(), purchaseRows[0])
	assert.Equal(t, []string{"1", "2024-01-01", "INV001", "Acme Co", "1000", "18%"}, purchaseRows[1])
	assert.Equal(t, []string{"2", "2024-01-02", "INV002", "Beta Ltd", "2000", "12%"}, purchaseRows[2])

	salesRows, err := f.GetRows(SalesSheet)
	require.NoError(t, err)
	require.Len(t, salesRows, 2)
	assert.Equal(t, []string{"1", "2024-02-01", "S001", "Gamma Inc", "500", "5%"}, salesRows[1])
}

func TestWorkbookWriterEmptyTables(t *testing.T) {
	// Reports that filtered down to nothing still produce a valid workbook
	// with header-only sheets.
	writer := NewWorkbookWriter(testLogger())
	data, err := writer.Write(sampleTable(), sampleTable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	for _, sheet := range []string{PurchaseSheet, SalesSheet} {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		require.Len(t, rows, 1, "sheet %s", sheet)
		assert.Equal(t, dataprocessing.Headers(), rows[0])
	}
}

func TestWorkbookWriterRequiresBothTables(t *testing.T) {
	writer := NewWorkbookWriter(testLogger())

	_, err := writer.Write(nil, sampleTable())
	assert.Error(t, err)

	_, err = writer.Write(sampleTable(), nil)
	assert.Error(t, err)
}
