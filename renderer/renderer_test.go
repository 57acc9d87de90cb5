package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/bankviz"
	"github.com/etnz/bankviz/date"
)

func testTable(t *testing.T) *bankviz.PriceTable {
	t.Helper()
	records := []bankviz.Record{
		{Day: date.MustParse("2013-02-08"), Ticker: "JPM", Close: 100},
		{Day: date.MustParse("2013-02-11"), Ticker: "JPM", Close: 110},
		{Day: date.MustParse("2013-02-12"), Ticker: "JPM", Close: 99},
		{Day: date.MustParse("2013-02-08"), Ticker: "BAC", Close: 10},
		{Day: date.MustParse("2013-02-11"), Ticker: "BAC", Close: 11},
		{Day: date.MustParse("2013-02-12"), Ticker: "BAC", Close: 9.9},
	}
	table, err := bankviz.FromRecords(records, []string{"JPM", "BAC", "GS"})
	if err != nil {
		t.Fatalf("FromRecords() returned error: %v", err)
	}
	return table
}

func TestNewReport(t *testing.T) {
	r := NewReport("Test Report", testTable(t))

	if r.Title != "Test Report" {
		t.Errorf("Title = %q want %q", r.Title, "Test Report")
	}
	if len(r.Rows) != 3 {
		t.Fatalf("len(Rows) = %v want 3", len(r.Rows))
	}

	jpm := r.Rows[0]
	if jpm.Ticker != "JPM" || jpm.Obs != 3 {
		t.Errorf("Rows[0] = %+v want Ticker JPM, Obs 3", jpm)
	}
	if jpm.Total != "-1.00%" {
		t.Errorf("Rows[0].Total = %q want %q", jpm.Total, "-1.00%")
	}

	// GS has no data: every statistic renders as "-".
	gs := r.Rows[2]
	if gs.Obs != 0 || gs.Mean != "-" || gs.Total != "-" {
		t.Errorf("Rows[2] = %+v want zero observations and dashes", gs)
	}

	// JPM and BAC move in lockstep, GS is undefined.
	if got := r.Corr.Rows[0].Cells[1]; got != "1.00" {
		t.Errorf("Corr JPM/BAC = %q want %q", got, "1.00")
	}
	if got := r.Corr.Rows[0].Cells[2]; got != "n/a" {
		t.Errorf("Corr JPM/GS = %q want %q", got, "n/a")
	}
}

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown(NewReport("Financial Analysis", testTable(t)))

	for _, want := range []string{
		"# Financial Analysis",
		"## Price and Return Statistics",
		"## Correlation of Daily Returns",
		"JPM", "BAC", "GS",
		"n/a",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, md)
		}
	}
	if strings.Contains(md, "error") {
		t.Errorf("SummaryMarkdown() reported a template error:\n%s", md)
	}
}
