// Package report handles output consumption: a finished report is valid
// Markdown persisted under a filename sanitized from its topic, and every
// run is recorded in a small SQLite history so hosts can list past reports.
package report
