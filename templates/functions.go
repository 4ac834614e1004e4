package templates

import (
	"fmt"
	"html/template"
	"time"

	"github.com/testithq/trx-reporter/types"
)

// GetTemplateFunc returns the template functions shared by the report
// renderers.
func GetTemplateFunc() template.FuncMap {
	return template.FuncMap{
		"formatDuration": FormatDuration,
		"getStatusClass": func(status types.TestStatus) string {
			return GetStatusClass(status)
		},
		"getStatusText": func(status types.TestStatus) string {
			return string(status)
		},
	}
}

// FormatDuration renders a duration the way the report displays it:
// "45.50s" under a minute, "2m 05.30s" under an hour, "1h 02m 05.00s"
// beyond that.
func FormatDuration(d time.Duration) string {
	seconds := d.Seconds()
	switch {
	case seconds >= 3600:
		hours := int(seconds / 3600)
		remainder := seconds - float64(hours)*3600
		minutes := int(remainder / 60)
		return fmt.Sprintf("%dh %02dm %05.2fs", hours, minutes, remainder-float64(minutes)*60)
	case seconds >= 60:
		minutes := int(seconds / 60)
		return fmt.Sprintf("%dm %05.2fs", minutes, seconds-float64(minutes)*60)
	default:
		return fmt.Sprintf("%.2fs", seconds)
	}
}

// GetStatusClass returns a consistent lowercase CSS class for a status.
func GetStatusClass(status types.TestStatus) string {
	switch status {
	case types.StatusPassed:
		return "pass"
	case types.StatusFailed:
		return "fail"
	case types.StatusError:
		return "error"
	case types.StatusNotExecuted:
		return "skip"
	default:
		return "unknown"
	}
}
