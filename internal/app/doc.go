// Package app assembles the application: configuration, logging, services,
// HTTP routing, and server lifecycle. cmd/web contains only the thin main
// that hands the embedded web assets to NewApplication and calls Run.
package app
