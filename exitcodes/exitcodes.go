// Package exitcodes defines the exit codes used by trx-reporter.
//
// These exit codes allow CI pipelines to distinguish between a report that
// records failing tests and the tool itself failing to produce a report.
package exitcodes

const (
	// Success (0) indicates the report was generated and every test passed.
	Success = 0

	// ReportFailure (1) indicates the report was generated but the run
	// contains failing, errored or skipped tests, or the input document
	// was malformed.
	ReportFailure = 1

	// RuntimeErr (2) indicates the tool could not run at all: missing
	// input file, bad configuration, or a write failure.
	RuntimeErr = 2
)
