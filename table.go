package bankviz

import (
	"math"
	"slices"

	"github.com/etnz/bankviz/date"
)

// PriceTable is a wide, date-indexed table of closing prices, with one
// column per ticker in display order. Rows are sorted by day and unique.
// A cell with no observation holds NaN.
type PriceTable struct {
	days    []date.Date
	tickers []string
	cells   [][]float64 // cells[row][col], NaN when missing
}

// newPriceTable returns a table of the given shape with every cell missing.
func newPriceTable(tickers []string, days []date.Date) *PriceTable {
	cells := make([][]float64, len(days))
	for i := range cells {
		row := make([]float64, len(tickers))
		for j := range row {
			row[j] = math.NaN()
		}
		cells[i] = row
	}
	return &PriceTable{
		days:    slices.Clone(days),
		tickers: slices.Clone(tickers),
		cells:   cells,
	}
}

// Tickers returns the column labels in display order.
func (t *PriceTable) Tickers() []string { return slices.Clone(t.tickers) }

// Days returns the row labels in ascending order.
func (t *PriceTable) Days() []date.Date { return slices.Clone(t.days) }

// Len returns the number of rows.
func (t *PriceTable) Len() int { return len(t.days) }

// At returns the cell at (row, col). NaN marks a missing observation.
func (t *PriceTable) At(row, col int) float64 { return t.cells[row][col] }

// observations counts the non-missing cells of a column.
func (t *PriceTable) observations(col int) int {
	n := 0
	for row := range t.days {
		if !math.IsNaN(t.cells[row][col]) {
			n++
		}
	}
	return n
}

// Returns derives the daily-return table: each cell is the change of that
// ticker's price versus the immediately preceding row, as a fraction.
// The first row has no preceding row and is entirely missing; so is any cell
// whose own or preceding price is missing. A zero preceding price leaves the
// cell missing too, since the change is undefined rather than infinite.
func (t *PriceTable) Returns() *PriceTable {
	r := newPriceTable(t.tickers, t.days)
	for row := 1; row < len(t.days); row++ {
		for col := range t.tickers {
			prev, cur := t.cells[row-1][col], t.cells[row][col]
			if math.IsNaN(prev) || math.IsNaN(cur) || prev == 0 {
				continue
			}
			r.cells[row][col] = (cur - prev) / prev
		}
	}
	return r
}

// Complete restricts the table to tickers that have at least one observation
// and to days where all of those tickers have one. The boxplot panel draws
// distributions over this subset so that every box covers the same days.
func (t *PriceTable) Complete() *PriceTable {
	var keep []int
	var tickers []string
	for col, ticker := range t.tickers {
		if t.observations(col) > 0 {
			keep = append(keep, col)
			tickers = append(tickers, ticker)
		}
	}

	nt := &PriceTable{tickers: tickers}
	for row, day := range t.days {
		complete := true
		for _, col := range keep {
			if math.IsNaN(t.cells[row][col]) {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		vals := make([]float64, len(keep))
		for i, col := range keep {
			vals[i] = t.cells[row][col]
		}
		nt.days = append(nt.days, day)
		nt.cells = append(nt.cells, vals)
	}
	return nt
}
