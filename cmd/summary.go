package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankviz/chart"
	"github.com/etnz/bankviz/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	file    string
	tickers string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display price and return statistics per ticker" }
func (*summaryCmd) Usage() string {
	return `bvz summary [-f <csv>] [-t <tickers>]

  Displays the figures behind the chart as a markdown report: per-ticker
  price statistics and the correlation matrix of daily returns.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", installPath(defaultInput), "CSV file of daily prices")
	f.StringVar(&c.tickers, "t", defaultTickers, "comma-separated tickers, in display order")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := loadTable(c.file, c.tickers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := renderer.NewReport(chart.Title, table)
	printMarkdown(renderer.SummaryMarkdown(report))

	return subcommands.ExitSuccess
}
