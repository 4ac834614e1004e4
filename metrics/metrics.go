// Package metrics exposes run results in the Prometheus textfile format so
// a node_exporter textfile collector can scrape historical CI runs.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/testithq/trx-reporter/reporting"
)

const MetricsNamespace = "trx_report"

// WriteTextfile renders the run's gauges into a Prometheus textfile at path.
// The file is written atomically via a rename, so a collector never observes
// a partial scrape.
func WriteTextfile(path string, data *reporting.ReportData) error {
	registry := prometheus.NewRegistry()
	registerer := prometheus.WrapRegistererWith(
		prometheus.Labels{"run_id": data.RunID},
		registry,
	)

	testsTotal := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "tests_total",
		Help:      "Number of tests in the run by status",
	}, []string{"status"})
	testsTotal.WithLabelValues("passed").Set(float64(data.Stats.Passed))
	testsTotal.WithLabelValues("failed").Set(float64(data.Stats.Failed))
	testsTotal.WithLabelValues("errored").Set(float64(data.Stats.Errored))
	testsTotal.WithLabelValues("skipped").Set(float64(data.Stats.Skipped))

	passRate := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "pass_rate_percent",
		Help:      "Percentage of tests that passed",
	})
	passRate.Set(data.Stats.PassRate)

	runDuration := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_duration_seconds",
		Help:      "Wall-clock duration of the test run",
	})
	runDuration.Set(data.Duration.Seconds())

	avgDuration := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "test_duration_avg_seconds",
		Help:      "Mean duration across individual test results",
	})
	avgDuration.Set(data.Average.Seconds())

	success := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_success",
		Help:      "1 when every test passed, 0 otherwise",
	})
	if data.Success {
		success.Set(1)
	}

	registerer.MustRegister(testsTotal, passRate, runDuration, avgDuration, success)

	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile to %s: %w", path, err)
	}
	return nil
}
