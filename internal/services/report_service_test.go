package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gstpro/internal/dataprocessing"
	"gstpro/internal/exporter"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService() *ReportService {
	logger := testLogger()
	return NewReportService(exporter.NewWorkbookWriter(logger), logger)
}

// reportCSV builds a CSV upload with the standard banner block in front of
// the given header and data lines.
func reportCSV(filename string, lines ...string) ReportUpload {
	var b strings.Builder
	for i := 0; i < dataprocessing.BannerRows; i++ {
		b.WriteString("report banner\n")
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return ReportUpload{Filename: filename, Data: strings.NewReader(b.String())}
}

func validPurchase() ReportUpload {
	return reportCSV("purchases.csv",
		"Invoice Date,Voucher No.,Receiver Name,Taxable value,Rate",
		"2024-01-01,INV001,Acme Co,1000,18",
		"2024-01-02,INV002,Beta Ltd,2000,12",
	)
}

func validSales() ReportUpload {
	return reportCSV("sales.csv",
		"Invoice Date,Invoice No.,Party Name,Taxable Value,Rate",
		"2024-02-01,S001,Gamma Inc,500,5",
	)
}

func TestProcessBothSucceed(t *testing.T) {
	service := newTestService()

	result, fileErrors := service.Process(context.Background(), validPurchase(), validSales())
	require.Empty(t, fileErrors)
	require.NotNil(t, result)

	require.Len(t, result.Purchase.Rows, 2)
	assert.Equal(t, "Acme Co", result.Purchase.Rows[0].PartyName)
	assert.Equal(t, "18%", result.Purchase.Rows[0].GSTRate)

	require.Len(t, result.Sales.Rows, 1)
	assert.Equal(t, "Gamma Inc", result.Sales.Rows[0].PartyName)
}

func TestProcessOneFileFails(t *testing.T) {
	service := newTestService()

	// Purchase is missing the Rate column entirely
	purchase := reportCSV("purchases.csv",
		"Invoice Date,Voucher No.,Receiver Name,Taxable value",
		"2024-01-01,INV001,Acme Co,1000",
	)

	result, fileErrors := service.Process(context.Background(), purchase, validSales())
	assert.Nil(t, result)
	require.Len(t, fileErrors, 1)

	assert.Equal(t, ReportPurchase, fileErrors[0].FileType)
	assert.Contains(t, fileErrors[0].Message, "GST Rate")

	var missingErr *dataprocessing.MissingColumnError
	require.True(t, errors.As(fileErrors[0].Err, &missingErr))
	assert.Equal(t, dataprocessing.FieldGSTRate, missingErr.Field)
}

func TestProcessBothFilesFail(t *testing.T) {
	service := newTestService()

	purchase := ReportUpload{Filename: "purchases.csv", Data: strings.NewReader("too short\n")}
	sales := ReportUpload{Filename: "sales.txt", Data: strings.NewReader("wrong format")}

	result, fileErrors := service.Process(context.Background(), purchase, sales)
	assert.Nil(t, result)
	require.Len(t, fileErrors, 2)

	assert.Equal(t, ReportPurchase, fileErrors[0].FileType)
	assert.Equal(t, ReportSales, fileErrors[1].FileType)
}

func TestExportProducesWorkbook(t *testing.T) {
	service := newTestService()

	workbook, result, fileErrors := service.Export(context.Background(), validPurchase(), validSales())
	require.Empty(t, fileErrors)
	require.NotNil(t, result)
	require.NotEmpty(t, workbook)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{exporter.PurchaseSheet, exporter.SalesSheet}, f.GetSheetList())

	rows, err := f.GetRows(exporter.PurchaseSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "2024-01-01", "INV001", "Acme Co", "1000", "18%"}, rows[1])
}

func TestExportNeverPartial(t *testing.T) {
	service := newTestService()

	sales := ReportUpload{Filename: "sales.csv", Data: strings.NewReader("not enough rows\n")}

	workbook, result, fileErrors := service.Export(context.Background(), validPurchase(), sales)
	assert.Nil(t, workbook)
	assert.Nil(t, result)
	require.Len(t, fileErrors, 1)
	assert.Equal(t, ReportSales, fileErrors[0].FileType)
}
