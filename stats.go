package bankviz

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CorrMatrix holds pairwise Pearson correlations between ticker series.
// It is symmetric with 1 on the diagonal; a pair with fewer than two
// co-present observations has a NaN cell.
type CorrMatrix struct {
	tickers []string
	cells   []float64 // row-major n*n
}

// Tickers returns the row and column labels, in display order.
func (m *CorrMatrix) Tickers() []string { return slices.Clone(m.tickers) }

// Len returns the matrix dimension.
func (m *CorrMatrix) Len() int { return len(m.tickers) }

// At returns the correlation between tickers i and j.
func (m *CorrMatrix) At(i, j int) float64 { return m.cells[i*len(m.tickers)+j] }

// Correlation computes the pairwise correlation of the table's columns,
// using for each pair only the days where both series have a value.
// Pass the daily-return table to obtain the return-correlation matrix.
func Correlation(t *PriceTable) *CorrMatrix {
	n := len(t.tickers)
	m := &CorrMatrix{tickers: slices.Clone(t.tickers), cells: make([]float64, n*n)}
	var xs, ys []float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			xs, ys = xs[:0], ys[:0]
			for row := range t.days {
				x, y := t.cells[row][i], t.cells[row][j]
				if math.IsNaN(x) || math.IsNaN(y) {
					continue
				}
				xs, ys = append(xs, x), append(ys, y)
			}
			c := math.NaN()
			if len(xs) >= 2 {
				if i == j {
					c = 1
				} else {
					c = stat.Correlation(xs, ys, nil)
				}
			}
			m.cells[i*n+j], m.cells[j*n+i] = c, c
		}
	}
	return m
}

// TickerSummary describes one ticker's price and daily-return series.
// Unobservable values (empty column, single observation) are NaN.
type TickerSummary struct {
	Ticker      string
	Obs         int     // number of days with a price
	First, Last float64 // first and last observed close
	Min, Max    float64
	Mean, Std   float64
	Total       Percent // price change from First to Last
	MeanDaily   Percent // mean daily return
}

// Summarize computes per-ticker descriptive statistics of the price table.
func Summarize(t *PriceTable) []TickerSummary {
	returns := t.Returns()
	out := make([]TickerSummary, 0, len(t.tickers))
	for col, ticker := range t.tickers {
		nan := math.NaN()
		s := TickerSummary{
			Ticker: ticker,
			First:  nan, Last: nan,
			Min: nan, Max: nan,
			Mean: nan, Std: nan,
			Total: Percent(nan), MeanDaily: Percent(nan),
		}

		var obs []float64
		for row := range t.days {
			if v := t.cells[row][col]; !math.IsNaN(v) {
				obs = append(obs, v)
			}
		}
		s.Obs = len(obs)
		if len(obs) > 0 {
			s.First, s.Last = obs[0], obs[len(obs)-1]
			s.Min, s.Max = floats.Min(obs), floats.Max(obs)
			s.Mean = stat.Mean(obs, nil)
			s.Std = stat.StdDev(obs, nil)
			if s.First != 0 {
				s.Total = Percent(100 * (s.Last - s.First) / s.First)
			}
		}

		var rets []float64
		for row := range t.days {
			if v := returns.cells[row][col]; !math.IsNaN(v) {
				rets = append(rets, v)
			}
		}
		if len(rets) > 0 {
			s.MeanDaily = Percent(100 * stat.Mean(rets, nil))
		}
		out = append(out, s)
	}
	return out
}
