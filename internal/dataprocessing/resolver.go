package dataprocessing

// Logical field names for the cleaned report columns.
const (
	FieldDate          = "Date"
	FieldInvoiceNo     = "Invoice No"
	FieldPartyName     = "Party Name"
	FieldTaxableAmount = "Taxable Amount"
	FieldGSTRate       = "GST Rate"
)

// FieldSpec pairs a logical field with the header spellings it may appear
// under in GST report exports. Aliases are checked in order; the first one
// present in the header wins.
type FieldSpec struct {
	Name    string
	Aliases []string
}

// ReportFields is the fixed column mapping for both Purchase and Sales
// reports. Declaration order defines the canonical output column order.
var ReportFields = []FieldSpec{
	{Name: FieldDate, Aliases: []string{"Invoice Date", "Invoice date"}},
	{Name: FieldInvoiceNo, Aliases: []string{"Invoice No.", "Invoice Number", "Voucher No."}},
	{Name: FieldPartyName, Aliases: []string{"Party Name", "Receiver Name"}},
	{Name: FieldTaxableAmount, Aliases: []string{"Taxable value", "Taxable Value"}},
	{Name: FieldGSTRate, Aliases: []string{"Rate"}},
}

// ResolvedColumns maps each logical field name to the actual header name
// found in a particular RawTable.
type ResolvedColumns map[string]string

// ResolveColumns locates an actual column for every logical field in
// ReportFields. fileType names the report (Purchase or Sales) and is only
// used to attribute errors. Fails with a MissingColumnError on the first
// field that has no alias present in the table header.
func ResolveColumns(table *RawTable, fileType string) (ResolvedColumns, error) {
	present := make(map[string]struct{}, len(table.Columns))
	for _, col := range table.Columns {
		present[col] = struct{}{}
	}

	resolved := make(ResolvedColumns, len(ReportFields))
	for _, field := range ReportFields {
		found := ""
		for _, alias := range field.Aliases {
			if _, ok := present[alias]; ok {
				found = alias
				break
			}
		}
		if found == "" {
			return nil, NewMissingColumnError(fileType, field.Name)
		}
		resolved[field.Name] = found
	}
	return resolved, nil
}
