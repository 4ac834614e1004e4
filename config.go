package reporter

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/testithq/trx-reporter/flags"
)

const (
	DefaultInputPath  = "results.trx"
	DefaultOutputPath = "test-report.html"
)

// Config holds the resolved tool configuration.
type Config struct {
	InputPath  string
	OutputPath string

	Style            string
	Title            string
	DescriptionsPath string
	SummaryPath      string
	MetricsPath      string
	PrintTable       bool

	Log *logrus.Logger
}

// NewConfig resolves the configuration from the CLI context. Input and
// output paths are positional and optional; both fall back to their
// conventional defaults.
func NewConfig(ctx *cli.Context, log *logrus.Logger) (*Config, error) {
	if ctx.NArg() > 2 {
		return nil, fmt.Errorf("expected at most 2 arguments (input.trx, output.html), got %d", ctx.NArg())
	}

	inputPath := DefaultInputPath
	if ctx.Args().Len() > 0 {
		inputPath = ctx.Args().Get(0)
	}
	outputPath := DefaultOutputPath
	if ctx.Args().Len() > 1 {
		outputPath = ctx.Args().Get(1)
	}

	cfg := &Config{
		InputPath:        inputPath,
		OutputPath:       outputPath,
		Style:            ctx.String(flags.Style.Name),
		Title:            ctx.String(flags.Title.Name),
		DescriptionsPath: ctx.String(flags.Descriptions.Name),
		SummaryPath:      ctx.String(flags.SummaryFile.Name),
		MetricsPath:      ctx.String(flags.MetricsFile.Name),
		PrintTable:       !ctx.Bool(flags.NoTable.Name),
		Log:              log,
	}

	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Check validates the configuration.
func (c *Config) Check() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.Log == nil {
		return fmt.Errorf("log must not be nil")
	}
	return nil
}
