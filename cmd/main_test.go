package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	reporter "github.com/testithq/trx-reporter"
	"github.com/testithq/trx-reporter/exitcodes"
)

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, exitcodes.ReportFailure,
		exitCodeFor(reporter.NewReportError(reporter.ErrRunFailed)))

	assert.Equal(t, exitcodes.RuntimeErr,
		exitCodeFor(reporter.NewRuntimeError(errors.New("missing input"))))

	// CLI parse errors carry no classification and still exit as runtime.
	assert.Equal(t, exitcodes.RuntimeErr,
		exitCodeFor(errors.New("flag provided but not defined: -bogus")))
}
