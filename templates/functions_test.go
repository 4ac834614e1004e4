package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/testithq/trx-reporter/types"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "sub-second", duration: 480 * time.Millisecond, want: "0.48s"},
		{name: "under a minute", duration: 45*time.Second + 500*time.Millisecond, want: "45.50s"},
		{name: "exactly a minute", duration: time.Minute, want: "1m 00.00s"},
		{name: "minutes", duration: 125*time.Second + 300*time.Millisecond, want: "2m 05.30s"},
		{name: "hours", duration: 3725 * time.Second, want: "1h 02m 05.00s"},
		{name: "zero", duration: 0, want: "0.00s"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDuration(tc.duration))
		})
	}
}

func TestGetStatusClass(t *testing.T) {
	assert.Equal(t, "pass", GetStatusClass(types.StatusPassed))
	assert.Equal(t, "fail", GetStatusClass(types.StatusFailed))
	assert.Equal(t, "error", GetStatusClass(types.StatusError))
	assert.Equal(t, "skip", GetStatusClass(types.StatusNotExecuted))
	assert.Equal(t, "unknown", GetStatusClass(types.StatusUnknown))
}

func TestGetHTMLTemplate(t *testing.T) {
	tmpl, err := GetHTMLTemplate("report.html.tmpl")
	assert.NoError(t, err)
	assert.NotNil(t, tmpl)

	_, err = GetHTMLTemplate("nope.html.tmpl")
	assert.Error(t, err)
}
