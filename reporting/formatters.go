package reporting

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/testithq/trx-reporter/templates"
	"github.com/testithq/trx-reporter/ui"
)

// ReportFormatter converts ReportData to a specific output format.
type ReportFormatter interface {
	Format(data *ReportData) (string, error)
}

// ReportWriter writes formatted content to a destination.
type ReportWriter interface {
	Write(content string) error
}

// FileWriter writes report content to a file.
type FileWriter struct {
	path string
}

func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

func (w *FileWriter) Write(content string) error {
	if err := os.WriteFile(w.path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", w.path, err)
	}
	return nil
}

// StdoutWriter writes report content to stdout.
type StdoutWriter struct{}

func NewStdoutWriter() *StdoutWriter {
	return &StdoutWriter{}
}

func (w *StdoutWriter) Write(content string) error {
	fmt.Print(content)
	return nil
}

// ReportGenerator combines a formatter with a writer.
type ReportGenerator struct {
	formatter ReportFormatter
	writer    ReportWriter
}

func NewReportGenerator(formatter ReportFormatter, writer ReportWriter) *ReportGenerator {
	return &ReportGenerator{formatter: formatter, writer: writer}
}

func (g *ReportGenerator) Generate(data *ReportData) error {
	content, err := g.formatter.Format(data)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}
	return g.writer.Write(content)
}

// htmlView is the root object the HTML template executes against.
type htmlView struct {
	Report *ReportData
	Style  Style
}

// HTMLFormatter renders the self-contained HTML document.
type HTMLFormatter struct {
	style Style
}

func NewHTMLFormatter(style Style) *HTMLFormatter {
	return &HTMLFormatter{style: style}
}

func (f *HTMLFormatter) Format(data *ReportData) (string, error) {
	tmpl, err := templates.GetHTMLTemplate("report.html.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML template: %w", err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, htmlView{Report: data, Style: f.style}); err != nil {
		return "", fmt.Errorf("failed to execute HTML template: %w", err)
	}
	return sb.String(), nil
}

// TextSummaryFormatter renders a plain-text run summary with a per-category
// tree, suitable for CI logs or a --summary-file.
type TextSummaryFormatter struct{}

func NewTextSummaryFormatter() *TextSummaryFormatter {
	return &TextSummaryFormatter{}
}

func (f *TextSummaryFormatter) Format(data *ReportData) (string, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", data.Title))
	sb.WriteString(fmt.Sprintf("Run:      %s\n", data.RunID))
	sb.WriteString(fmt.Sprintf("Started:  %s\n", data.StartDisplay))
	sb.WriteString(fmt.Sprintf("Finished: %s\n", data.FinishDisplay))
	sb.WriteString(fmt.Sprintf("Duration: %s\n", templates.FormatDuration(data.Duration)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total: %d, Passed: %d, Failed: %d, Errored: %d, Skipped: %d (%s pass rate)\n",
		data.Stats.Total, data.Stats.Passed, data.Stats.Failed, data.Stats.Errored, data.Stats.Skipped,
		data.PassRateText))
	sb.WriteString("\n")

	for ci, category := range data.Categories {
		lastCategory := ci == len(data.Categories)-1
		mark := "✓"
		if category.HasFailure {
			mark = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s%s %s (%d/%d, %s)\n",
			ui.BuildTreePrefix(1, lastCategory, nil),
			mark, category.DisplayName, category.PassCount, category.Count,
			templates.FormatDuration(category.Duration)))

		for ti, item := range category.Tests {
			lastTest := ti == len(category.Tests)-1
			sb.WriteString(fmt.Sprintf("%s%s %s (%s)\n",
				ui.BuildTreePrefix(2, lastTest, []bool{lastCategory}),
				ui.StatusChar(templates.GetStatusClass(item.Status)),
				item.Name,
				templates.FormatDuration(item.Duration)))
		}
	}

	if len(data.FailedTestNames) > 0 {
		sb.WriteString("\nFailing tests:\n")
		for _, name := range data.FailedTestNames {
			sb.WriteString(fmt.Sprintf("  - %s\n", name))
		}
	}

	status := "PASS"
	if !data.Success {
		status = "FAIL"
	}
	sb.WriteString(fmt.Sprintf("\nResult: %s\n", status))

	return sb.String(), nil
}

// TableFormatter renders a console summary table with go-pretty.
type TableFormatter struct {
	showTests bool
}

func NewTableFormatter(showTests bool) *TableFormatter {
	return &TableFormatter{showTests: showTests}
}

func (f *TableFormatter) Format(data *ReportData) (string, error) {
	t := table.NewWriter()
	t.SetTitle(data.Title)
	t.AppendHeader(table.Row{"", "Category / Test", "Passed", "Total", "Duration", "Status"})

	for _, category := range data.Categories {
		status := "PASS"
		if category.HasFailure {
			status = "FAIL"
		}
		t.AppendRow(table.Row{
			category.Index,
			category.DisplayName,
			category.PassCount,
			category.Count,
			templates.FormatDuration(category.Duration),
			status,
		})

		if f.showTests {
			for ti, item := range category.Tests {
				prefix := ui.TreeBranch
				if ti == len(category.Tests)-1 {
					prefix = ui.TreeLastBranch
				}
				t.AppendRow(table.Row{
					"",
					prefix + item.Name,
					"",
					"",
					templates.FormatDuration(item.Duration),
					strings.ToUpper(templates.GetStatusClass(item.Status)),
				})
			}
		}
		t.AppendSeparator()
	}

	t.AppendFooter(table.Row{
		"",
		"TOTAL",
		data.Stats.Passed,
		data.Stats.Total,
		templates.FormatDuration(data.Duration),
		data.PassRateText,
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 6, Align: text.AlignCenter, AlignFooter: text.AlignCenter},
	})

	if data.Success {
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	} else {
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	}

	return t.Render() + "\n", nil
}
