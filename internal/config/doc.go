// Package config loads and validates the application configuration.
//
// Configuration is resolved in precedence order: environment variables
// (prefix CLOCKREPORT, e.g. CLOCKREPORT_SERVER_PORT), then an optional
// config.yaml next to the binary, then built-in defaults. The merged result
// is validated with go-playground/validator before use.
package config
