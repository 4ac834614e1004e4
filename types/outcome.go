package types

import (
	"strings"
	"time"
)

// TestStatus represents the recorded outcome of a single test.
type TestStatus string

const (
	StatusPassed      TestStatus = "Passed"
	StatusFailed      TestStatus = "Failed"
	StatusError       TestStatus = "Error"
	StatusNotExecuted TestStatus = "NotExecuted"
	StatusUnknown     TestStatus = "Unknown"
)

// ParseStatus maps a TRX outcome string onto a TestStatus. Unrecognized
// outcome strings map to StatusUnknown rather than failing the parse.
func ParseStatus(s string) TestStatus {
	switch s {
	case "Passed":
		return StatusPassed
	case "Failed":
		return StatusFailed
	case "Error":
		return StatusError
	case "NotExecuted":
		return StatusNotExecuted
	default:
		return StatusUnknown
	}
}

// Passed reports whether the status counts as a passing result.
func (s TestStatus) Passed() bool {
	return s == StatusPassed
}

// TestOutcome captures one result entry from a TRX document.
type TestOutcome struct {
	FullName  string
	Category  string
	ShortName string
	Status    TestStatus
	Duration  time.Duration
	Output    string // captured stdout, empty when the runner recorded none
}

// SplitQualifiedName splits a qualified test name into its owning category
// and short name at the last dot. A name without a dot is all short name,
// with an empty category.
func SplitQualifiedName(full string) (category, short string) {
	idx := strings.LastIndex(full, ".")
	if idx == -1 {
		return "", full
	}
	return full[:idx], full[idx+1:]
}

// NewTestOutcome builds a TestOutcome from raw TRX fields, deriving the
// category and short name from the qualified test name.
func NewTestOutcome(fullName string, status TestStatus, duration time.Duration, output string) TestOutcome {
	category, short := SplitQualifiedName(fullName)
	return TestOutcome{
		FullName:  fullName,
		Category:  category,
		ShortName: short,
		Status:    status,
		Duration:  duration,
		Output:    output,
	}
}

// RunSummary holds the run-level metadata of a TRX document.
type RunSummary struct {
	RunID   string
	Name    string
	Start   time.Time
	Finish  time.Time
	Total   int
	Passed  int
	Failed  int
	Errored int
	Skipped int
}

// Duration returns the wall-clock span of the run.
func (r RunSummary) Duration() time.Duration {
	return r.Finish.Sub(r.Start)
}

// PassRate returns passed/total as a percentage, 0 when the run is empty.
func (r RunSummary) PassRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Passed) / float64(r.Total) * 100
}

// Success reports whether every non-Passed counter is zero.
func (r RunSummary) Success() bool {
	return r.Failed == 0 && r.Errored == 0 && r.Skipped == 0
}

// Category groups the outcomes that share a qualified-name prefix.
type Category struct {
	Name       string
	Outcomes   []TestOutcome
	PassCount  int
	Duration   time.Duration
	HasFailure bool
}
