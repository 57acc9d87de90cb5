package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankviz/chart"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	file    string
	tickers string
	out     string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the 2x2 bank stock analysis figure" }
func (*chartCmd) Usage() string {
	return `bvz chart [-f <csv>] [-t <tickers>] [-o <png>]

  Loads the daily price file, pivots it into a per-ticker table of closing
  prices, and renders one PNG with four panels: price distribution boxplot,
  price performance, daily-return volatility, and return correlation heatmap.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", installPath(defaultInput), "CSV file of daily prices")
	f.StringVar(&c.tickers, "t", defaultTickers, "comma-separated tickers, in display order")
	f.StringVar(&c.out, "o", installPath(defaultOutput), "output PNG file")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := loadTable(c.file, c.tickers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := chart.Render(table, c.out); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving the figure: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Visualization saved successfully as %q\n", c.out)
	return subcommands.ExitSuccess
}
