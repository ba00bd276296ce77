package dataprocessing

import "strconv"

// SerialColumn is the synthetic first column of every cleaned report.
const SerialColumn = "S/N"

// CleanRow is one record of a processed report.
type CleanRow struct {
	Serial        int    `json:"serial"`
	Date          string `json:"date"`
	InvoiceNo     string `json:"invoice_no"`
	PartyName     string `json:"party_name"`
	TaxableAmount string `json:"taxable_amount"`
	GSTRate       string `json:"gst_rate"`
}

// CleanTable is the final per-report artifact: rows in source order with
// 1-based contiguous serials.
type CleanTable struct {
	Rows []CleanRow
}

// Headers returns the output column names in canonical order.
func Headers() []string {
	headers := make([]string, 0, len(ReportFields)+1)
	headers = append(headers, SerialColumn)
	for _, field := range ReportFields {
		headers = append(headers, field.Name)
	}
	return headers
}

// Records renders the table as string rows matching Headers(), ready for the
// exporter or a preview payload.
func (t *CleanTable) Records() [][]string {
	records := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		records = append(records, row.record())
	}
	return records
}

func (r CleanRow) record() []string {
	return []string{
		strconv.Itoa(r.Serial),
		r.Date,
		r.InvoiceNo,
		r.PartyName,
		r.TaxableAmount,
		r.GSTRate,
	}
}

// ExtractReport projects a RawTable onto the logical report columns, drops
// rows missing Party Name or Taxable Amount, formats the GST rate, and
// numbers the surviving rows. fileType attributes resolution errors to the
// report being processed. A table with no surviving rows is a valid empty
// result.
func ExtractReport(table *RawTable, fileType string) (*CleanTable, error) {
	resolved, err := ResolveColumns(table, fileType)
	if err != nil {
		return nil, err
	}

	dateIdx := table.ColumnIndex(resolved[FieldDate])
	invoiceIdx := table.ColumnIndex(resolved[FieldInvoiceNo])
	partyIdx := table.ColumnIndex(resolved[FieldPartyName])
	amountIdx := table.ColumnIndex(resolved[FieldTaxableAmount])
	rateIdx := table.ColumnIndex(resolved[FieldGSTRate])

	clean := &CleanTable{}
	for i := range table.Rows {
		party := table.Cell(i, partyIdx)
		amount := table.Cell(i, amountIdx)
		if isBlank(party) || isBlank(amount) {
			continue
		}

		clean.Rows = append(clean.Rows, CleanRow{
			Serial:        len(clean.Rows) + 1,
			Date:          table.Cell(i, dateIdx),
			InvoiceNo:     table.Cell(i, invoiceIdx),
			PartyName:     party,
			TaxableAmount: amount,
			GSTRate:       formatRate(table.Cell(i, rateIdx)),
		})
	}
	return clean, nil
}

// formatRate appends the percent suffix to whatever the source holds. The
// value is deliberately not parsed; non-numeric text passes through intact.
func formatRate(value string) string {
	return value + "%"
}
