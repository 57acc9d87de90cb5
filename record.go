package bankviz

import (
	"fmt"
	"strings"

	"github.com/etnz/bankviz/date"
	"github.com/shopspring/decimal"
)

// Record is a single (day, ticker) closing price observation read from the
// source file.
type Record struct {
	Day    date.Date
	Ticker string
	Close  float64
}

// parseClose validates a closing price cell. The raw text goes through a
// decimal first so that text like "N/A" or "12.3.4" is rejected with the
// offending value instead of silently becoming a number.
func parseClose(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid closing price %q: %w", s, err)
	}
	return d.InexactFloat64(), nil
}
