package renderer

import (
	"fmt"
	"math"

	"github.com/etnz/bankviz"
)

// Report holds the pre-formatted data rendered into the markdown summary.
type Report struct {
	Title string
	Rows  []Row
	Corr  CorrTable
}

// Row is one ticker's line in the statistics table. Values are formatted,
// with "-" standing for anything unobservable.
type Row struct {
	Ticker                           string
	Obs                              int
	First, Last, Min, Max, Mean, Std string
	Total, MeanDaily                 string
}

// CorrTable is the formatted correlation matrix.
type CorrTable struct {
	Tickers []string
	Rows    []CorrRow
}

// CorrRow is one line of the correlation matrix.
type CorrRow struct {
	Ticker string
	Cells  []string
}

// NewReport builds the summary report data from a price table.
func NewReport(title string, t *bankviz.PriceTable) *Report {
	r := &Report{Title: title}

	for _, s := range bankviz.Summarize(t) {
		r.Rows = append(r.Rows, Row{
			Ticker:    s.Ticker,
			Obs:       s.Obs,
			First:     fmtCell(s.First),
			Last:      fmtCell(s.Last),
			Min:       fmtCell(s.Min),
			Max:       fmtCell(s.Max),
			Mean:      fmtCell(s.Mean),
			Std:       fmtCell(s.Std),
			Total:     fmtPercent(s.Total),
			MeanDaily: fmtPercent(s.MeanDaily),
		})
	}

	m := bankviz.Correlation(t.Returns())
	r.Corr.Tickers = m.Tickers()
	for i, ticker := range r.Corr.Tickers {
		row := CorrRow{Ticker: ticker}
		for j := range r.Corr.Tickers {
			row.Cells = append(row.Cells, fmtCorr(m.At(i, j)))
		}
		r.Corr.Rows = append(r.Corr.Rows, row)
	}
	return r
}

// SummaryMarkdown renders the report to a markdown string.
func SummaryMarkdown(r *Report) string {
	partials := map[string]string{
		"summary_stats":       "summary_stats.md",
		"summary_correlation": "summary_correlation.md",
	}
	return renderTemplate("summary", "summary_report.md", partials, r)
}

func fmtCell(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

func fmtPercent(p bankviz.Percent) string {
	if math.IsNaN(float64(p)) {
		return "-"
	}
	return p.SignedString()
}

func fmtCorr(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}
