package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/etnz/bankviz"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// panels builds the four plots of the figure in grid order:
// boxplot and price lines on top, return lines and heatmap below.
func panels(t *bankviz.PriceTable) ([][]*plot.Plot, error) {
	box, err := boxPanel(t)
	if err != nil {
		return nil, err
	}
	prices, err := pricePanel(t)
	if err != nil {
		return nil, err
	}
	returns, err := returnPanel(t.Returns())
	if err != nil {
		return nil, err
	}
	heat, err := heatPanel(bankviz.Correlation(t.Returns()))
	if err != nil {
		return nil, err
	}
	return [][]*plot.Plot{{box, prices}, {returns, heat}}, nil
}

// boxPanel draws the closing price distribution of each ticker.
// Tickers without any observation are skipped, and the remaining boxes all
// cover the same days (see PriceTable.Complete).
func boxPanel(t *bankviz.PriceTable) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Distribution of Bank Stock Prices (5-Year)"
	p.Y.Label.Text = "Stock Price (USD)"

	complete := t.Complete()
	names := complete.Tickers()
	if complete.Len() > 0 {
		for col, ticker := range names {
			vals := make(plotter.Values, complete.Len())
			for row := range vals {
				vals[row] = complete.At(row, col)
			}
			b, err := plotter.NewBoxPlot(vg.Points(30), float64(col), vals)
			if err != nil {
				return nil, fmt.Errorf("could not build boxplot for %s: %w", ticker, err)
			}
			p.Add(b)
		}
	}
	// NominalX panics on an empty name list, which happens when no requested
	// ticker has any observation: leave the default axis on the empty panel.
	if len(names) > 0 {
		p.NominalX(names...)
	}
	return p, nil
}

// pricePanel draws the closing price of each ticker over time.
func pricePanel(t *bankviz.PriceTable) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Bank Stock Price Performance (5-Year)"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Stock Price (USD)"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.Legend.Top = true
	p.Legend.Left = true

	if err := addLines(p, t, 255); err != nil {
		return nil, err
	}
	return p, nil
}

// returnPanel draws the daily return of each ticker over time with
// semi-transparent strokes, so overlapping volatility remains readable.
func returnPanel(returns *bankviz.PriceTable) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Daily Returns (Volatility)"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Percentage Change"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.Legend.Top = true
	p.Legend.Left = true

	if err := addLines(p, returns, 204); err != nil {
		return nil, err
	}
	return p, nil
}

// addLines adds one line per ticker to p, with the given alpha, skipping
// missing cells so gaps do not draw as spikes. Every ticker gets a legend
// entry, in column order, even when its series is empty.
func addLines(p *plot.Plot, t *bankviz.PriceTable, alpha uint8) error {
	days := t.Days()
	for col, ticker := range t.Tickers() {
		xys := make(plotter.XYs, 0, len(days))
		for row, day := range days {
			v := t.At(row, col)
			if math.IsNaN(v) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(day.Unix()), Y: v})
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("could not build line for %s: %w", ticker, err)
		}
		c := color.NRGBAModel.Convert(plotutil.Color(col)).(color.NRGBA)
		c.A = alpha
		l.Color = c
		p.Add(l)
		p.Legend.Add(ticker, l)
	}
	return nil
}

// corrGrid adapts a correlation matrix to the heatmap grid interface.
// Row 0 is drawn at the bottom of the panel.
type corrGrid struct{ m *bankviz.CorrMatrix }

func (g corrGrid) Dims() (c, r int) { return g.m.Len(), g.m.Len() }
func (g corrGrid) X(c int) float64  { return float64(c) }
func (g corrGrid) Y(r int) float64  { return float64(r) }
func (g corrGrid) Z(c, r int) float64 {
	return g.m.At(r, c)
}

// tickerTicks labels integer grid coordinates with ticker names.
type tickerTicks []string

func (t tickerTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(t))
	for i, name := range t {
		if float64(i) < min || float64(i) > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: name})
	}
	return ticks
}

// heatPanel draws the correlation matrix on a diverging blue-white-red scale
// fixed to [-1, 1], so zero correlation keeps the neutral color. Each cell is
// annotated with its value to two decimals, or "n/a" when undefined.
func heatPanel(m *bankviz.CorrMatrix) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Correlation Matrix of Daily Returns"

	h := plotter.NewHeatMap(corrGrid{m}, moreland.SmoothBlueRed().Palette(255))
	h.Min, h.Max = -1, 1
	p.Add(h)

	names := m.Tickers()
	var xys plotter.XYs
	var annotations []string
	for i := range names {
		for j := range names {
			v := m.At(i, j)
			a := "n/a"
			if !math.IsNaN(v) {
				a = fmt.Sprintf("%.2f", v)
			}
			xys = append(xys, plotter.XY{X: float64(j), Y: float64(i)})
			annotations = append(annotations, a)
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: annotations})
	if err != nil {
		return nil, fmt.Errorf("could not annotate heatmap: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(labels)

	p.X.Tick.Marker = tickerTicks(names)
	p.Y.Tick.Marker = tickerTicks(names)
	return p, nil
}
