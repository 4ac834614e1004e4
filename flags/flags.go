package flags

import (
	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "TRX_REPORTER"

func prefixEnvVars(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	Style = &cli.StringFlag{
		Name:    "style",
		Usage:   "Report style to render ('classic' or 'compact')",
		Value:   "classic",
		EnvVars: prefixEnvVars("STYLE"),
	}
	Title = &cli.StringFlag{
		Name:    "title",
		Usage:   "Title shown in the report header",
		Value:   "TestIT API Tests — Test Report",
		EnvVars: prefixEnvVars("TITLE"),
	}
	Descriptions = &cli.StringFlag{
		Name:    "descriptions",
		Usage:   "Path to a YAML descriptions catalog merged over the built-in one",
		EnvVars: prefixEnvVars("DESCRIPTIONS"),
	}
	SummaryFile = &cli.StringFlag{
		Name:    "summary-file",
		Usage:   "Optional path to write a plain-text run summary",
		EnvVars: prefixEnvVars("SUMMARY_FILE"),
	}
	MetricsFile = &cli.StringFlag{
		Name:    "metrics-file",
		Usage:   "Optional path to write run metrics in Prometheus textfile format",
		EnvVars: prefixEnvVars("METRICS_FILE"),
	}
	NoTable = &cli.BoolFlag{
		Name:    "no-table",
		Usage:   "Skip printing the console summary table",
		EnvVars: prefixEnvVars("NO_TABLE"),
	}
	LogLevel = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Value:   "info",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
	}
	LogFormat = &cli.StringFlag{
		Name:    "log-format",
		Usage:   "Log format ('text' or 'json')",
		Value:   "text",
		EnvVars: prefixEnvVars("LOG_FORMAT"),
	}
)

var Flags = []cli.Flag{
	Style,
	Title,
	Descriptions,
	SummaryFile,
	MetricsFile,
	NoTable,
	LogLevel,
	LogFormat,
}
