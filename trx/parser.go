// Package trx decodes Visual Studio TRX test-run documents into the
// in-memory model consumed by the report builder.
package trx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/google/uuid"

	"github.com/testithq/trx-reporter/types"
)

// testRun mirrors the TRX schema elements the report needs. Decoding is
// best-effort: absent counters and output blocks fall back to zero values.
type testRun struct {
	XMLName       xml.Name      `xml:"TestRun"`
	ID            string        `xml:"id,attr"`
	Name          string        `xml:"name,attr"`
	Times         runTimes      `xml:"Times"`
	ResultSummary resultSummary `xml:"ResultSummary"`
	Results       runResults    `xml:"Results"`
}

type runTimes struct {
	Start  string `xml:"start,attr"`
	Finish string `xml:"finish,attr"`
}

type resultSummary struct {
	Counters counters `xml:"Counters"`
}

type counters struct {
	Total       int `xml:"total,attr"`
	Passed      int `xml:"passed,attr"`
	Failed      int `xml:"failed,attr"`
	Error       int `xml:"error,attr"`
	NotExecuted int `xml:"notExecuted,attr"`
}

type unitTestResult struct {
	TestName string       `xml:"testName,attr"`
	Outcome  string       `xml:"outcome,attr"`
	Duration string       `xml:"duration,attr"`
	Output   resultOutput `xml:"Output"`
}

type resultOutput struct {
	StdOut string `xml:"StdOut"`
}

type runResults struct {
	UnitTestResults []unitTestResult `xml:"UnitTestResult"`
}

// ParseFile reads and parses the TRX document at path.
func ParseFile(path string) (types.RunSummary, []types.TestOutcome, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.RunSummary{}, nil, &MissingInputFileError{Path: path, Err: err}
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a TRX document from r into a RunSummary and its flat list
// of test outcomes, preserving document order. ANSI escape sequences are
// stripped from the raw document before decoding: runners that capture
// colored output write the escape bytes verbatim, and the XML decoder
// rejects them as illegal characters.
func Parse(r io.Reader) (types.RunSummary, []types.TestOutcome, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return types.RunSummary{}, nil, &MalformedDocumentError{Err: err}
	}

	var doc testRun
	if err := xml.Unmarshal([]byte(stripansi.Strip(string(raw))), &doc); err != nil {
		return types.RunSummary{}, nil, &MalformedDocumentError{Err: err}
	}

	summary, err := buildSummary(doc)
	if err != nil {
		return types.RunSummary{}, nil, err
	}

	outcomes := make([]types.TestOutcome, 0, len(doc.Results.UnitTestResults))
	for _, result := range doc.Results.UnitTestResults {
		duration, err := ParseRunDuration(result.Duration)
		if err != nil {
			return types.RunSummary{}, nil, fmt.Errorf("result %q: %w", result.TestName, err)
		}

		outcomes = append(outcomes, types.NewTestOutcome(
			result.TestName,
			types.ParseStatus(result.Outcome),
			duration,
			cleanOutput(result.Output.StdOut),
		))
	}

	return summary, outcomes, nil
}

func buildSummary(doc testRun) (types.RunSummary, error) {
	start, err := ParseTimestamp(doc.Times.Start)
	if err != nil {
		return types.RunSummary{}, fmt.Errorf("run start: %w", err)
	}
	finish, err := ParseTimestamp(doc.Times.Finish)
	if err != nil {
		return types.RunSummary{}, fmt.Errorf("run finish: %w", err)
	}

	return types.RunSummary{
		RunID:   normalizeRunID(doc.ID),
		Name:    doc.Name,
		Start:   start,
		Finish:  finish,
		Total:   doc.ResultSummary.Counters.Total,
		Passed:  doc.ResultSummary.Counters.Passed,
		Failed:  doc.ResultSummary.Counters.Failed,
		Errored: doc.ResultSummary.Counters.Error,
		Skipped: doc.ResultSummary.Counters.NotExecuted,
	}, nil
}

// normalizeRunID canonicalizes the TestRun id attribute when it is a valid
// GUID. Anything else is kept verbatim; the id is display metadata only.
func normalizeRunID(id string) string {
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return id
}

// cleanOutput trims the whitespace padding the runner leaves around
// captured stdout.
func cleanOutput(s string) string {
	return strings.TrimSpace(s)
}
