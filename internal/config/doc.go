// Package config centralizes application configuration.
//
// Configuration starts from built-in defaults, is overridden by an optional
// config.yaml next to the binary, then by GSTPRO_-prefixed environment
// variables, and finally validated. The application runs with no external
// configuration at all.
package config
