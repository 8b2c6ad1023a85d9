// Package http contains the HTTP handlers for the clock report service.
//
// ReportHandler accepts a multipart spreadsheet upload, runs the report
// pipeline, and returns the processed workbook as a download. HealthHandler
// serves liveness, readiness, and version endpoints. Both follow the
// handler-struct pattern with injected service, logger, and error handler.
package http
