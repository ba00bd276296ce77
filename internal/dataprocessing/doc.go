// Package dataprocessing turns uploaded GST report files into cleaned
// tabular data ready for export. It covers the complete transformation from
// raw bytes to a standardized table.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Loader: Reads CSV or Excel uploads, skips the banner block, and builds a RawTable
// 2. Resolver: Maps the five logical report fields onto whatever header spellings the file uses
// 3. Extractor: Projects, filters, and renumbers rows into a CleanTable
//
// # Usage
//
// Basic processing example:
//
//	table, err := dataprocessing.LoadTable("Purchase", "purchases.xlsx", upload)
//	if err != nil {
//	    return err
//	}
//	clean, err := dataprocessing.ExtractReport(table, "Purchase")
//
// Failures are typed: a *LoadError means the file could not be read at all,
// a *MissingColumnError names the logical field that had no matching header.
package dataprocessing
