// Package services implements the business logic layer between the HTTP
// handlers and the data processing core.
//
// ReportService owns the two report pipelines: it loads and extracts the
// Purchase and Sales uploads independently, accumulates per-file errors, and
// only assembles the output workbook when both pipelines succeed. Services
// hold no request state; every call processes its own fresh uploads.
//
// HealthService answers the health, readiness, liveness, and version
// endpoints.
package services
