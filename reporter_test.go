package reporter

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testithq/trx-reporter/trx"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testConfig(t *testing.T, inputPath string) *Config {
	t.Helper()
	return &Config{
		InputPath:  inputPath,
		OutputPath: filepath.Join(t.TempDir(), "report.html"),
		Style:      "classic",
		Title:      "Test Report",
		PrintTable: false,
		Log:        quietLogger(),
	}
}

func TestServiceRunSampleFile(t *testing.T) {
	cfg := testConfig(t, "testdata/sample.trx")

	svc, err := New(cfg)
	require.NoError(t, err)

	err = svc.Run()

	// The sample run has a failing test, so generation succeeds but the
	// run is reported as failed.
	require.Error(t, err)
	assert.True(t, IsReportError(err))
	assert.True(t, errors.Is(err, ErrRunFailed))

	content, readErr := os.ReadFile(cfg.OutputPath)
	require.NoError(t, readErr)
	html := string(content)
	assert.Contains(t, html, "4/5")
	assert.Contains(t, html, "80%")
	assert.Contains(t, html, "source: sample.trx")

	// Category names render with the common prefix stripped.
	assert.Contains(t, html, "AuthenticationTests")
	assert.NotContains(t, html, "TestIT.ApiTests.Tests.AuthenticationTests")
}

func TestServiceRunMissingInput(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "absent.trx"))

	svc, err := New(cfg)
	require.NoError(t, err)

	err = svc.Run()
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))
	assert.False(t, IsReportError(err))

	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestServiceRunMalformedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.trx")
	require.NoError(t, os.WriteFile(path, []byte("<TestRun><unclosed"), 0644))

	cfg := testConfig(t, path)
	svc, err := New(cfg)
	require.NoError(t, err)

	err = svc.Run()
	require.Error(t, err)
	assert.True(t, IsReportError(err))
	assert.True(t, trx.IsMalformedDocument(err))
}

func TestServiceRunWithSummaryAndMetrics(t *testing.T) {
	cfg := testConfig(t, "testdata/sample.trx")
	cfg.SummaryPath = filepath.Join(t.TempDir(), "summary.txt")
	cfg.MetricsPath = filepath.Join(t.TempDir(), "run.prom")

	svc, err := New(cfg)
	require.NoError(t, err)

	err = svc.Run()
	require.Error(t, err)
	assert.True(t, IsReportError(err))

	summary, readErr := os.ReadFile(cfg.SummaryPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(summary), "Result: FAIL")

	prom, readErr := os.ReadFile(cfg.MetricsPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(prom), "trx_report_tests_total")
}

func TestServiceRunCompactStyle(t *testing.T) {
	cfg := testConfig(t, "testdata/sample.trx")
	cfg.Style = "compact"

	svc, err := New(cfg)
	require.NoError(t, err)

	err = svc.Run()
	require.Error(t, err)

	content, readErr := os.ReadFile(cfg.OutputPath)
	require.NoError(t, readErr)

	// Compact omits captured output blocks.
	assert.NotContains(t, string(content), "Expected status 404")
}

func TestServiceRunCustomDescriptions(t *testing.T) {
	descPath := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(descPath, []byte(
		"tests:\n  Login_WithValidCredentials_ReturnsToken: \"Custom login description\"\n"), 0644))

	cfg := testConfig(t, "testdata/sample.trx")
	cfg.DescriptionsPath = descPath

	svc, err := New(cfg)
	require.NoError(t, err)

	err = svc.Run()
	require.Error(t, err)

	content, readErr := os.ReadFile(cfg.OutputPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "Custom login description")
}

func TestNewUnknownStyle(t *testing.T) {
	cfg := testConfig(t, "testdata/sample.trx")
	cfg.Style = "neon"

	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))
}

func TestNewMissingDescriptionsFile(t *testing.T) {
	cfg := testConfig(t, "testdata/sample.trx")
	cfg.DescriptionsPath = filepath.Join(t.TempDir(), "absent.yaml")

	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))
}

func TestConfigCheck(t *testing.T) {
	cfg := testConfig(t, "testdata/sample.trx")
	require.NoError(t, cfg.Check())

	empty := *cfg
	empty.InputPath = ""
	require.Error(t, empty.Check())

	noOut := *cfg
	noOut.OutputPath = ""
	require.Error(t, noOut.Check())

	noLog := *cfg
	noLog.Log = nil
	require.Error(t, noLog.Check())
}

func TestErrorClassification(t *testing.T) {
	base := errors.New("boom")

	runtime := NewRuntimeError(base)
	assert.True(t, IsRuntimeError(runtime))
	assert.False(t, IsReportError(runtime))
	assert.True(t, errors.Is(runtime, base))
	assert.Contains(t, runtime.Error(), "runtime error")

	report := NewReportError(base)
	assert.True(t, IsReportError(report))
	assert.False(t, IsRuntimeError(report))
	assert.True(t, errors.Is(report, base))
}
