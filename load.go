package bankviz

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/etnz/bankviz/date"
)

// Column names expected in the source file header. The layout is the one of
// the all_stocks_5yr dataset; extra columns are ignored.
const (
	dateColumn  = "date"
	closeColumn = "close"
	nameColumn  = "Name"
)

// Load reads the daily price file at path and pivots it into a wide table
// with one column per requested ticker, in the given order.
//
// Rows for tickers outside the requested set are skipped. A requested ticker
// with no rows yields an all-missing column, not an error.
//
// Two rows for the same (day, ticker) with different closing prices are
// rejected: the pivot would otherwise silently pick one of them. A row
// repeating an identical price is tolerated.
func Load(path string, tickers []string) (*PriceTable, error) {
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no tickers requested")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open price file %q: %w", path, err)
	}
	defer f.Close()

	records, err := readRecords(f, tickers)
	if err != nil {
		return nil, fmt.Errorf("could not read price file %q: %w", path, err)
	}
	return pivot(records, tickers)
}

// FromRecords pivots in-memory records into a wide table, with the same
// duplicate policy as Load. Records for tickers outside the requested set
// are ignored, like rows of the source file would be.
func FromRecords(records []Record, tickers []string) (*PriceTable, error) {
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no tickers requested")
	}
	return pivot(records, tickers)
}

// readRecords decodes the CSV stream, keeping only rows for the requested tickers.
func readRecords(r io.Reader, tickers []string) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read header: %w", err)
	}
	iDate := slices.Index(header, dateColumn)
	iClose := slices.Index(header, closeColumn)
	iName := slices.Index(header, nameColumn)
	for name, i := range map[string]int{dateColumn: iDate, closeColumn: iClose, nameColumn: iName} {
		if i < 0 {
			return nil, fmt.Errorf("missing column %q in header %v", name, header)
		}
	}

	wanted := make(map[string]bool, len(tickers))
	for _, t := range tickers {
		wanted[t] = true
	}

	var records []Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		ticker := row[iName]
		if !wanted[ticker] {
			continue
		}
		day, err := date.Parse(row[iDate])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		price, err := parseClose(row[iClose])
		if err != nil {
			return nil, fmt.Errorf("line %d, ticker %s: %w", line, ticker, err)
		}
		records = append(records, Record{Day: day, Ticker: ticker, Close: price})
	}
	return records, nil
}

// pivot reshapes records into the wide table: days as rows, tickers as columns.
func pivot(records []Record, tickers []string) (*PriceTable, error) {
	colOf := make(map[string]int, len(tickers))
	for i, t := range tickers {
		colOf[t] = i
	}

	type key struct {
		day date.Date
		col int
	}
	prices := make(map[key]float64, len(records))
	var days []date.Date
	seen := make(map[date.Date]bool)
	for _, rec := range records {
		col, ok := colOf[rec.Ticker]
		if !ok {
			continue
		}
		k := key{rec.Day, col}
		if prev, dup := prices[k]; dup {
			if prev != rec.Close {
				return nil, fmt.Errorf("duplicate row for %s on %s: close %v conflicts with %v",
					rec.Ticker, rec.Day, rec.Close, prev)
			}
			continue
		}
		prices[k] = rec.Close
		if !seen[rec.Day] {
			seen[rec.Day] = true
			days = append(days, rec.Day)
		}
	}
	slices.SortFunc(days, func(a, b date.Date) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})

	rowOf := make(map[date.Date]int, len(days))
	for i, d := range days {
		rowOf[d] = i
	}
	t := newPriceTable(tickers, days)
	for k, v := range prices {
		t.cells[rowOf[k.day]][k.col] = v
	}
	return t, nil
}
