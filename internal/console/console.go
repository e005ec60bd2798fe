// Package console implements the interactive menu loop: it prompts for
// queries, runs the fetch-convert-analyze pipeline and prints the results.
// Errors are caught at the top of each user action and rendered as mapped
// messages; the loop always returns to the menu.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tejusbharadwaj/gridview/internal/api"
	"github.com/tejusbharadwaj/gridview/internal/apperrors"
	"github.com/tejusbharadwaj/gridview/internal/sample"
	"github.com/tejusbharadwaj/gridview/internal/series"
)

// Fetcher retrieves raw records for a variable over a time range.
type Fetcher interface {
	Fetch(ctx context.Context, variableID, startTime, endTime string) ([]map[string]any, error)
}

// Console drives the interactive session.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	logger  *logrus.Logger
	maxRows int

	// newFetcher builds the API client on first use so demo mode and the
	// variable listing work without a configured API key.
	newFetcher func() (Fetcher, error)
	fetcher    Fetcher
}

// New creates a console bound to the given streams. The fetcher factory is
// invoked lazily on the first live query.
func New(in io.Reader, out io.Writer, logger *logrus.Logger, maxRows int, newFetcher func() (Fetcher, error)) *Console {
	if maxRows <= 0 {
		maxRows = series.DefaultMaxRows
	}
	return &Console{
		in:         bufio.NewScanner(in),
		out:        out,
		logger:     logger,
		maxRows:    maxRows,
		newFetcher: newFetcher,
	}
}

// Run executes the menu loop until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Welcome to Fingrid Open Data Viewer!")
	fmt.Fprintln(c.out, "App for retrieving and analyzing Finland's electricity data")

	for {
		choice, ok := c.prompt(menu())
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.fetchAndDisplay(ctx)
		case "2":
			c.showVariables()
		case "3":
			c.demoMode()
		case "4":
			fmt.Fprintln(c.out, "\nThank you for using Fingrid Data Viewer. Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option. Please select 1-4.")
		}
	}
}

func menu() string {
	var b strings.Builder
	b.WriteString("\n" + strings.Repeat("=", 50) + "\n")
	b.WriteString("  Fingrid Open Data Viewer\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	b.WriteString("1. View electricity data\n")
	b.WriteString("2. Show available variables\n")
	b.WriteString("3. Demo mode (with sample data)\n")
	b.WriteString("4. Exit\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	b.WriteString("Select option (1-4): ")
	return b.String()
}

// fetchAndDisplay runs one live query end to end.
func (c *Console) fetchAndDisplay(ctx context.Context) {
	variableID, ok := c.promptVariableID()
	if !ok {
		return
	}

	fmt.Fprintln(c.out, "\nEnter time range for data retrieval:")
	startTime, ok := c.promptTime("Start time (YYYY-MM-DD or YYYY-MM-DDTHH:MM:SSZ): ")
	if !ok {
		return
	}
	endTime, ok := c.promptTime("End time (YYYY-MM-DD or YYYY-MM-DDTHH:MM:SSZ): ")
	if !ok {
		return
	}

	fmt.Fprintln(c.out, "\nFetching data from Fingrid API...")

	fetcher, err := c.liveFetcher()
	if err != nil {
		c.reportError(err)
		return
	}

	records, err := fetcher.Fetch(ctx, variableID, startTime, endTime)
	if err != nil {
		c.reportError(err)
		fmt.Fprintln(c.out, "\nTip: Use Demo Mode (option 3) to see example output without an API key!")
		return
	}

	c.processAndDisplay(records, variableID)
}

// demoMode runs the pipeline over generated sample data, no API key needed.
func (c *Console) demoMode() {
	fmt.Fprintln(c.out, "\n"+strings.Repeat("=", 50))
	fmt.Fprintln(c.out, "  DEMO MODE - Sample Electricity Data")
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
	fmt.Fprintln(c.out, "\nSimulating: Hydro Power Production (Variable 124)")
	fmt.Fprintln(c.out, "Time Period: 2024-01-15 to 2024-01-18")

	c.processAndDisplay(sample.Generate(), "124")
}

func (c *Console) processAndDisplay(records []map[string]any, variableID string) {
	table, err := series.ToTable(records)
	if err != nil {
		c.reportError(err)
		return
	}

	stats, err := series.CalculateStats(table)
	if err != nil {
		c.reportError(err)
		return
	}

	if table.Len() == 0 {
		fmt.Fprintln(c.out, "No data available for the specified parameters.")
		return
	}

	rendered, err := series.FormatTable(table, c.maxRows)
	if err != nil {
		c.reportError(err)
		return
	}

	fmt.Fprintf(c.out, "\nData for Variable %s:\n", variableID)
	fmt.Fprintln(c.out, strings.Repeat("-", 50))
	fmt.Fprintln(c.out, rendered)

	if !stats.Empty() {
		fmt.Fprintln(c.out, "\nStatistics:")
		fmt.Fprintln(c.out, strings.Repeat("-", 50))
		fmt.Fprintf(c.out, "Count:     %d\n", stats.Count)
		fmt.Fprintf(c.out, "Average:   %.2f\n", stats.Average)
		fmt.Fprintf(c.out, "Maximum:   %.2f\n", stats.Maximum)
		fmt.Fprintf(c.out, "Minimum:   %.2f\n", stats.Minimum)
		fmt.Fprintf(c.out, "Median:    %.2f\n", stats.Median)
		fmt.Fprintf(c.out, "Std Dev:   %.2f\n", stats.StdDev)
		fmt.Fprintln(c.out, strings.Repeat("-", 50))
	}

	if answer, ok := c.prompt("\nGenerate chart? (y/n): "); ok && strings.EqualFold(answer, "y") {
		c.renderChart(table, variableID)
	}
}

func (c *Console) showVariables() {
	fmt.Fprintln(c.out, "\nAvailable Electricity Variables:")
	fmt.Fprintln(c.out, strings.Repeat("-", 50))
	for _, v := range api.CommonVariables() {
		fmt.Fprintf(c.out, "  ID %-3s - %s\n", v.ID, v.Description)
	}
	fmt.Fprintln(c.out, strings.Repeat("-", 50))
}

func (c *Console) promptVariableID() (string, bool) {
	for {
		id, ok := c.prompt("Enter variable ID (e.g., 124 for Hydro, or 'list' to see all): ")
		if !ok {
			return "", false
		}
		if strings.EqualFold(id, "list") {
			c.showVariables()
			continue
		}
		if id != "" {
			return id, true
		}
		fmt.Fprintln(c.out, "Variable ID cannot be empty.")
	}
}

func (c *Console) promptTime(label string) (string, bool) {
	for {
		input, ok := c.prompt(label)
		if !ok {
			return "", false
		}
		if normalized, valid := normalizeTimeInput(input); valid {
			return normalized, true
		}
		fmt.Fprintln(c.out, "Invalid format. Please use: YYYY-MM-DD or YYYY-MM-DDTHH:MM:SSZ")
	}
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) liveFetcher() (Fetcher, error) {
	if c.fetcher != nil {
		return c.fetcher, nil
	}
	fetcher, err := c.newFetcher()
	if err != nil {
		return nil, err
	}
	c.fetcher = fetcher
	return fetcher, nil
}

// reportError prints the mapped user-facing message, plus the underlying
// detail when it adds information. Control always returns to the menu.
func (c *Console) reportError(err error) {
	message := apperrors.UserMessage(err)
	fmt.Fprintf(c.out, "\nError: %s\n", message)
	if detail := err.Error(); detail != message {
		fmt.Fprintf(c.out, "   Details: %s\n", detail)
	}
	c.logger.WithFields(logrus.Fields{
		"kind": apperrors.KindOf(err).String(),
	}).Debug(err)
}
