// Package reporter turns a TRX test-run document into a self-contained HTML
// report, with optional plain-text summary and Prometheus textfile outputs.
package reporter

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/testithq/trx-reporter/descriptions"
	"github.com/testithq/trx-reporter/metrics"
	"github.com/testithq/trx-reporter/reporting"
	"github.com/testithq/trx-reporter/trx"
)

// Service wires the parse, build and render stages together.
type Service struct {
	cfg     *Config
	log     *logrus.Logger
	catalog *descriptions.Catalog
	style   reporting.Style
}

// New creates the service from a validated config, resolving the style and
// the merged description catalog up front.
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, NewRuntimeError(fmt.Errorf("config must not be nil"))
	}

	style, err := reporting.LookupStyle(cfg.Style)
	if err != nil {
		return nil, NewRuntimeError(err)
	}

	catalog, err := descriptions.Default()
	if err != nil {
		return nil, NewRuntimeError(fmt.Errorf("failed to load built-in descriptions: %w", err))
	}
	if cfg.DescriptionsPath != "" {
		extra, err := descriptions.LoadFile(cfg.DescriptionsPath)
		if err != nil {
			return nil, NewRuntimeError(fmt.Errorf("failed to load descriptions catalog: %w", err))
		}
		catalog.Merge(extra)
	}

	return &Service{
		cfg:     cfg,
		log:     cfg.Log,
		catalog: catalog,
		style:   style,
	}, nil
}

// Run executes the full pipeline. It returns a ReportError when the
// generated report records a failing run or the input document was
// malformed, and a RuntimeError when no report could be produced.
func (s *Service) Run() error {
	s.log.WithFields(logrus.Fields{
		"input":  s.cfg.InputPath,
		"output": s.cfg.OutputPath,
		"style":  s.style.Name,
	}).Info("Generating test report")

	summary, outcomes, err := trx.ParseFile(s.cfg.InputPath)
	if err != nil {
		if trx.IsMissingInputFile(err) {
			return NewRuntimeError(err)
		}
		return NewReportError(err)
	}

	data := reporting.NewReportBuilder().
		WithCatalog(s.catalog).
		WithTitle(s.cfg.Title).
		Build(summary, outcomes, filepath.Base(s.cfg.InputPath))

	generator := reporting.NewReportGenerator(
		reporting.NewHTMLFormatter(s.style),
		reporting.NewFileWriter(s.cfg.OutputPath),
	)
	if err := generator.Generate(data); err != nil {
		return NewRuntimeError(err)
	}

	if s.cfg.SummaryPath != "" {
		summaryGen := reporting.NewReportGenerator(
			reporting.NewTextSummaryFormatter(),
			reporting.NewFileWriter(s.cfg.SummaryPath),
		)
		if err := summaryGen.Generate(data); err != nil {
			return NewRuntimeError(err)
		}
		s.log.WithField("path", s.cfg.SummaryPath).Debug("Wrote text summary")
	}

	if s.cfg.MetricsPath != "" {
		if err := metrics.WriteTextfile(s.cfg.MetricsPath, data); err != nil {
			return NewRuntimeError(err)
		}
		s.log.WithField("path", s.cfg.MetricsPath).Debug("Wrote metrics textfile")
	}

	if s.cfg.PrintTable {
		tableGen := reporting.NewReportGenerator(
			reporting.NewTableFormatter(false),
			reporting.NewStdoutWriter(),
		)
		if err := tableGen.Generate(data); err != nil {
			return NewRuntimeError(err)
		}
	}

	fmt.Printf("Report written to: %s\n", s.cfg.OutputPath)

	s.log.WithFields(logrus.Fields{
		"total":     data.Stats.Total,
		"passed":    data.Stats.Passed,
		"failed":    data.Stats.Failed,
		"errored":   data.Stats.Errored,
		"skipped":   data.Stats.Skipped,
		"pass_rate": data.PassRateText,
	}).Info("Report complete")

	if !data.Success {
		return NewReportError(ErrRunFailed)
	}
	return nil
}
