// Package services contains the application service layer sitting between
// the HTTP transport and the report pipeline.
//
// ReportService owns one complete pipeline invocation: load the uploaded
// workbook, build the output workbook, record metrics. Each call operates on
// its own freshly loaded data; there is no shared mutable state between
// invocations, so concurrent requests are safe.
//
// HealthService reports liveness, readiness, and build information.
package services
