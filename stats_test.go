package bankviz

import (
	"math"
	"testing"
)

// correlatedTable returns a table where JPM and BAC move in lockstep and
// GS moves exactly opposite to them.
func correlatedTable(t *testing.T) *PriceTable {
	t.Helper()
	days := []string{"2013-02-08", "2013-02-11", "2013-02-12", "2013-02-13", "2013-02-14"}
	jpm := []float64{100, 110, 99, 105, 120}
	var records []Record
	for i, d := range days {
		records = append(records,
			rec(d, "JPM", jpm[i]),
			rec(d, "BAC", jpm[i]/10),  // same returns as JPM
			rec(d, "GS", 1000/jpm[i]), // returns of opposite sign
		)
	}
	return mustTable(t, []string{"JPM", "BAC", "GS"}, records...)
}

func TestCorrelation(t *testing.T) {
	m := Correlation(correlatedTable(t).Returns())

	n := m.Len()
	if n != 3 {
		t.Fatalf("Len() = %v want 3", n)
	}
	for i := 0; i < n; i++ {
		if got := m.At(i, i); got != 1 {
			t.Errorf("At(%d, %d) = %v want 1", i, i, got)
		}
		for j := 0; j < n; j++ {
			if got, mirror := m.At(i, j), m.At(j, i); got != mirror {
				t.Errorf("At(%d, %d) = %v but At(%d, %d) = %v, want symmetric", i, j, got, j, i, mirror)
			}
			if got := m.At(i, j); got < -1 || got > 1 {
				t.Errorf("At(%d, %d) = %v outside [-1, 1]", i, j, got)
			}
		}
	}

	if got := m.At(0, 1); !approx(got, 1) {
		t.Errorf("corr(JPM, BAC) = %v want 1", got)
	}
	if got := m.At(0, 2); got >= 0 {
		t.Errorf("corr(JPM, GS) = %v want negative", got)
	}
}

func TestCorrelationUndefined(t *testing.T) {
	// A single co-present observation is not enough for a correlation.
	table := mustTable(t, []string{"JPM", "BAC"},
		rec("2013-02-08", "JPM", 100),
		rec("2013-02-11", "JPM", 110),
		rec("2013-02-12", "JPM", 99),
	)
	m := Correlation(table.Returns())

	if got := m.At(0, 0); got != 1 {
		t.Errorf("corr(JPM, JPM) = %v want 1", got)
	}
	if got := m.At(1, 1); !math.IsNaN(got) {
		t.Errorf("corr(BAC, BAC) = %v want NaN for an empty series", got)
	}
	if got := m.At(0, 1); !math.IsNaN(got) {
		t.Errorf("corr(JPM, BAC) = %v want NaN", got)
	}
}

func TestSummarize(t *testing.T) {
	table := mustTable(t, []string{"JPM", "GS"},
		rec("2013-02-08", "JPM", 100),
		rec("2013-02-11", "JPM", 110),
		rec("2013-02-12", "JPM", 99),
	)

	summaries := Summarize(table)
	if len(summaries) != 2 {
		t.Fatalf("len(Summarize()) = %v want 2", len(summaries))
	}

	jpm := summaries[0]
	if jpm.Ticker != "JPM" || jpm.Obs != 3 {
		t.Errorf("JPM summary = %+v want Ticker JPM, Obs 3", jpm)
	}
	if jpm.First != 100 || jpm.Last != 99 {
		t.Errorf("JPM First/Last = %v/%v want 100/99", jpm.First, jpm.Last)
	}
	if jpm.Min != 99 || jpm.Max != 110 {
		t.Errorf("JPM Min/Max = %v/%v want 99/110", jpm.Min, jpm.Max)
	}
	if !approx(jpm.Mean, 103) {
		t.Errorf("JPM Mean = %v want 103", jpm.Mean)
	}
	if !jpm.Total.Equal(Percent(-1)) {
		t.Errorf("JPM Total = %v want -1.00%%", jpm.Total)
	}

	gs := summaries[1]
	if gs.Obs != 0 {
		t.Errorf("GS Obs = %v want 0", gs.Obs)
	}
	if !math.IsNaN(gs.Mean) || !math.IsNaN(float64(gs.Total)) {
		t.Errorf("GS summary = %+v want NaN statistics", gs)
	}
}

func TestPercentString(t *testing.T) {
	testCases := []struct {
		name   string
		p      Percent
		want   string
		signed string
	}{
		{"Positive", Percent(1.234), "1.23%", "+1.23%"},
		{"Negative", Percent(-0.5), "-0.50%", "-0.50%"},
		{"Zero", Percent(0), "0.00%", "-"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.String(); got != tc.want {
				t.Errorf("String() = %q want %q", got, tc.want)
			}
			if got := tc.p.SignedString(); got != tc.signed {
				t.Errorf("SignedString() = %q want %q", got, tc.signed)
			}
		})
	}
}
