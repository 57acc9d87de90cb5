package bankviz

import (
	"testing"

	"github.com/etnz/bankviz/date"
)

// day is a helper for tests to build dates from their standard string form.
func day(s string) date.Date { return date.MustParse(s) }

// rec is a helper for tests to build a record from literals.
func rec(d, ticker string, price float64) Record {
	return Record{Day: day(d), Ticker: ticker, Close: price}
}

// mustTable pivots records into a table, failing the test on error.
func mustTable(t *testing.T, tickers []string, records ...Record) *PriceTable {
	t.Helper()
	table, err := FromRecords(records, tickers)
	if err != nil {
		t.Fatalf("FromRecords() returned error: %v", err)
	}
	return table
}

// approx compares two floats with a fixed precision.
func approx(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
