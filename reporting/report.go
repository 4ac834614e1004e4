package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/testithq/trx-reporter/descriptions"
	"github.com/testithq/trx-reporter/types"
)

// ReportStats contains the run-level counters as reported by the runner.
type ReportStats struct {
	Total    int
	Passed   int
	Failed   int
	Errored  int
	Skipped  int
	PassRate float64
}

// ReportTestItem represents a single rendered test row.
type ReportTestItem struct {
	Number      string // "3.1" style label: category index, row index
	Name        string // short name
	FullName    string
	Description string
	Status      types.TestStatus
	Duration    time.Duration
	Output      string
}

// ReportCategory represents one collapsible category section.
type ReportCategory struct {
	Index       int
	Name        string // qualified name
	DisplayName string // qualified name with the common prefix stripped
	Description string
	Count       int
	PassCount   int
	Duration    time.Duration
	HasFailure  bool
	Tests       []ReportTestItem
}

// ReportData contains all the structured data needed for any report format.
type ReportData struct {
	Title  string
	RunID  string
	Source string // input file name shown in the footer

	Start         time.Time
	Finish        time.Time
	StartDisplay  string
	FinishDisplay string
	Duration      time.Duration
	AvgPerTest    time.Duration

	Stats        ReportStats
	PassRateText string
	Success      bool

	Categories []ReportCategory

	// Overall outcome statistics. Slowest and Fastest are nil when the
	// document carried no result entries.
	Slowest   *ReportTestItem
	Fastest   *ReportTestItem
	Average   time.Duration
	TestCount int

	FailedTestNames []string
}

// ReportBuilder constructs ReportData from a parsed TRX run.
type ReportBuilder struct {
	catalog *descriptions.Catalog
	title   string
}

// NewReportBuilder creates a report builder with an empty description
// catalog and the default title.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{
		catalog: &descriptions.Catalog{
			Categories: map[string]string{},
			Tests:      map[string]string{},
		},
		title: "Test Report",
	}
}

// WithCatalog sets the description catalog consulted during the build.
func (rb *ReportBuilder) WithCatalog(catalog *descriptions.Catalog) *ReportBuilder {
	if catalog != nil {
		rb.catalog = catalog
	}
	return rb
}

// WithTitle sets the report title.
func (rb *ReportBuilder) WithTitle(title string) *ReportBuilder {
	if title != "" {
		rb.title = title
	}
	return rb
}

// Build aggregates the parsed outcomes into the ordered, immutable report
// model. Outcomes partition into categories by qualified-name prefix;
// categories follow the catalog's preferred order with unseen categories
// appended in first-encountered order; rows within a category sort by short
// name.
func (rb *ReportBuilder) Build(summary types.RunSummary, outcomes []types.TestOutcome, source string) *ReportData {
	report := &ReportData{
		Title:         rb.title,
		RunID:         summary.RunID,
		Source:        source,
		Start:         summary.Start,
		Finish:        summary.Finish,
		StartDisplay:  formatStartDisplay(summary.Start),
		FinishDisplay: summary.Finish.Format("2006-01-02 15:04:05"),
		Duration:      summary.Duration(),
		Stats: ReportStats{
			Total:    summary.Total,
			Passed:   summary.Passed,
			Failed:   summary.Failed,
			Errored:  summary.Errored,
			Skipped:  summary.Skipped,
			PassRate: summary.PassRate(),
		},
		PassRateText: fmt.Sprintf("%.0f%%", summary.PassRate()),
		Success:      summary.Success(),
		TestCount:    len(outcomes),
	}

	if summary.Total > 0 {
		report.AvgPerTest = summary.Duration() / time.Duration(summary.Total)
	}

	report.Categories = rb.buildCategories(outcomes)
	rb.computeOutcomeStats(report, outcomes)

	for _, o := range outcomes {
		if !o.Status.Passed() {
			report.FailedTestNames = append(report.FailedTestNames, o.FullName)
		}
	}

	return report
}

// buildCategories partitions the outcomes and applies the preferred
// category ordering.
func (rb *ReportBuilder) buildCategories(outcomes []types.TestOutcome) []ReportCategory {
	grouped := make(map[string][]types.TestOutcome)
	var firstSeen []string
	for _, o := range outcomes {
		if _, ok := grouped[o.Category]; !ok {
			firstSeen = append(firstSeen, o.Category)
		}
		grouped[o.Category] = append(grouped[o.Category], o)
	}

	ordered := make([]string, 0, len(firstSeen))
	placed := make(map[string]bool)
	for _, name := range rb.catalog.CategoryOrder {
		if _, ok := grouped[name]; ok && !placed[name] {
			ordered = append(ordered, name)
			placed[name] = true
		}
	}
	for _, name := range firstSeen {
		if !placed[name] {
			ordered = append(ordered, name)
			placed[name] = true
		}
	}

	categories := make([]ReportCategory, 0, len(ordered))
	for idx, name := range ordered {
		members := grouped[name]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].ShortName < members[j].ShortName
		})

		category := ReportCategory{
			Index:       idx + 1,
			Name:        name,
			DisplayName: rb.catalog.DisplayCategory(name),
			Description: rb.catalog.CategoryDescription(name),
			Count:       len(members),
		}

		for row, o := range members {
			if o.Status.Passed() {
				category.PassCount++
			} else {
				category.HasFailure = true
			}
			category.Duration += o.Duration

			category.Tests = append(category.Tests, ReportTestItem{
				Number:      fmt.Sprintf("%d.%d", category.Index, row+1),
				Name:        o.ShortName,
				FullName:    o.FullName,
				Description: rb.catalog.TestDescription(o.ShortName),
				Status:      o.Status,
				Duration:    o.Duration,
				Output:      o.Output,
			})
		}

		categories = append(categories, category)
	}

	return categories
}

// computeOutcomeStats fills the slowest/fastest/average panel. Ties go to
// the first-encountered outcome in document order.
func (rb *ReportBuilder) computeOutcomeStats(report *ReportData, outcomes []types.TestOutcome) {
	if len(outcomes) == 0 {
		return
	}

	slowest, fastest := outcomes[0], outcomes[0]
	var total time.Duration
	for _, o := range outcomes {
		total += o.Duration
		if o.Duration > slowest.Duration {
			slowest = o
		}
		if o.Duration < fastest.Duration {
			fastest = o
		}
	}

	report.Slowest = &ReportTestItem{Name: slowest.ShortName, FullName: slowest.FullName, Duration: slowest.Duration}
	report.Fastest = &ReportTestItem{Name: fastest.ShortName, FullName: fastest.FullName, Duration: fastest.Duration}
	report.Average = total / time.Duration(len(outcomes))
}

// formatStartDisplay renders the run start with its UTC offset, e.g.
// "2024-01-15 10:30:00 (UTC+02:00)".
func formatStartDisplay(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s (UTC%s%02d:%02d)",
		t.Format("2006-01-02 15:04:05"), sign, offset/3600, (offset%3600)/60)
}
