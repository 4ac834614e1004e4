package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testithq/trx-reporter/reporting"
	"github.com/testithq/trx-reporter/types"
)

func TestWriteTextfile(t *testing.T) {
	summary := types.RunSummary{
		RunID:  "run-42",
		Start:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Finish: time.Date(2024, 1, 15, 10, 32, 0, 0, time.UTC),
		Total:  5, Passed: 4, Failed: 1,
	}
	outcomes := []types.TestOutcome{
		types.NewTestOutcome("Suite.A.One", types.StatusPassed, 2*time.Second, ""),
		types.NewTestOutcome("Suite.A.Two", types.StatusFailed, 4*time.Second, ""),
	}
	data := reporting.NewReportBuilder().Build(summary, outcomes, "results.trx")

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, WriteTextfile(path, data))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)

	assert.Contains(t, content, `trx_report_tests_total{run_id="run-42",status="passed"} 4`)
	assert.Contains(t, content, `trx_report_tests_total{run_id="run-42",status="failed"} 1`)
	assert.Contains(t, content, `trx_report_pass_rate_percent{run_id="run-42"} 80`)
	assert.Contains(t, content, `trx_report_run_duration_seconds{run_id="run-42"} 120`)
	assert.Contains(t, content, `trx_report_test_duration_avg_seconds{run_id="run-42"} 3`)
	assert.Contains(t, content, `trx_report_run_success{run_id="run-42"} 0`)
}

func TestWriteTextfileSuccessGauge(t *testing.T) {
	summary := types.RunSummary{RunID: "run-ok", Total: 1, Passed: 1}
	data := reporting.NewReportBuilder().Build(summary, nil, "results.trx")

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, WriteTextfile(path, data))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `trx_report_run_success{run_id="run-ok"} 1`)
}

func TestWriteTextfileBadPath(t *testing.T) {
	data := reporting.NewReportBuilder().Build(types.RunSummary{}, nil, "r.trx")
	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "run.prom"), data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write metrics textfile")
}
