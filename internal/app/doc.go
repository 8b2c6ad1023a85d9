// Package app wires the clock report service together: configuration,
// logging, metrics, services, HTTP router, and the server lifecycle with
// graceful shutdown.
package app
