// Package exporter serializes processed Purchase and Sales tables into the
// downloadable output artifact.
//
// WorkbookWriter produces a single xlsx workbook with one sheet per report
// (Purchase Data, Sales Data) and a header row in the canonical column
// order, starting with the S/N serial column. The workbook is built fully in
// memory; the HTTP layer streams the returned bytes straight to the client.
package exporter
