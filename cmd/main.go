package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	reporter "github.com/testithq/trx-reporter"
	"github.com/testithq/trx-reporter/exitcodes"
	"github.com/testithq/trx-reporter/flags"
)

func main() {
	app := &cli.App{
		Name:      "trx-reporter",
		Usage:     "Generate a self-contained HTML report from a TRX test-run document",
		ArgsUsage: "[input.trx] [output.html]",
		Flags:     flags.Flags,
		Action:    run,
		ExitErrHandler: func(ctx *cli.Context, err error) {
			if err == nil {
				return
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitCodeFor(err))
		},
	}

	if err := app.Run(os.Args); err != nil {
		// Reached only if the ExitErrHandler did not terminate.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitcodes.RuntimeErr)
	}
}

// exitCodeFor maps an error to the process exit code. Only a generated
// report recording a failure exits 1; everything else, including CLI parse
// errors, counts as a runtime failure.
func exitCodeFor(err error) int {
	if reporter.IsReportError(err) {
		return exitcodes.ReportFailure
	}
	return exitcodes.RuntimeErr
}

func run(ctx *cli.Context) error {
	log, err := setupLogging(ctx)
	if err != nil {
		return reporter.NewRuntimeError(err)
	}

	cfg, err := reporter.NewConfig(ctx, log)
	if err != nil {
		return reporter.NewRuntimeError(fmt.Errorf("invalid configuration: %w", err))
	}

	svc, err := reporter.New(cfg)
	if err != nil {
		return err
	}
	return svc.Run()
}

func setupLogging(ctx *cli.Context) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(ctx.String(flags.LogLevel.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", ctx.String(flags.LogLevel.Name), err)
	}
	log.SetLevel(level)

	switch format := ctx.String(flags.LogFormat.Name); format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q (valid formats: text, json)", format)
	}

	return log, nil
}
