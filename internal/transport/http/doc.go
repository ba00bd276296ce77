// Package http implements the HTTP transport layer using Chi router.
//
// Handlers are organized by resource: ReportHandler owns the report
// processing endpoints (preview and workbook download), HealthHandler the
// health and version endpoints, and WebHandler the embedded upload page.
// Handlers translate between HTTP and the service layer and never contain
// business logic; failures are rendered as RFC 7807 problem responses
// through the shared ErrorHandler.
package http
