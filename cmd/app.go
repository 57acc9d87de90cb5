// Package cmd implements the CLI application to generate the bank stock
// analysis report.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/bankviz"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&chartCmd{}, "report")
	c.Register(&summaryCmd{}, "report")
}

// Default configuration, overridable by flags on every subcommand.
var (
	defaultTickers = "JPM,BAC,C,WFC,GS"
	defaultInput   = "all_stocks_5yr.csv"
	defaultOutput  = "bank_data_visualization.png"
)

// installPath resolves name against the executable directory, so default
// file names work regardless of the caller's working directory. Absolute
// names, and relative names when the executable cannot be located, are
// returned as-is.
func installPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}

// splitTickers parses a comma-separated ticker list, preserving order.
func splitTickers(s string) ([]string, error) {
	var tickers []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		tickers = append(tickers, t)
	}
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no tickers in %q", s)
	}
	return tickers, nil
}

// loadTable is the central function for commands to load the wide price table.
func loadTable(file, tickers string) (*bankviz.PriceTable, error) {
	list, err := splitTickers(tickers)
	if err != nil {
		return nil, err
	}
	return bankviz.Load(file, list)
}
