// Package render draws the charts: bar charts and the country graph as PNGs via
// gonum/plot, flight paths and country bubbles on a world map as PDFs via gofpdf, and
// the same geography as GeoJSON.
package render

import(
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/skypies/flightquota/analysis"
)

var ErrNoData = errors.New("nothing to draw")

var(
	BarWidth  = vg.Points(20)
	PNGWidth  = 8*vg.Inch
	PNGHeight = 6*vg.Inch
)

// {{{ BarChart

// BarChart plots a tally, one bar per label in tally order, with the count above each bar.
func BarChart(t *analysis.Tally, column string) (*plot.Plot, error) {
	bins := t.Bins()
	if len(bins) == 0 { return nil, fmt.Errorf("bar chart of %s: %w", column, ErrNoData) }

	vals   := plotter.Values{}
	names  := []string{}
	xys    := plotter.XYs{}
	labels := []string{}
	for i,b := range bins {
		vals = append(vals, float64(b.Count))
		names = append(names, b.Label)
		xys = append(xys, plotter.XY{X:float64(i), Y:float64(b.Count)})
		labels = append(labels, fmt.Sprintf("%d", b.Count))
	}

	p := plot.New()
	p.Title.Text = column + "数量柱状图"
	p.X.Label.Text = column
	p.Y.Label.Text = "数量"
	p.Y.Min = 0

	bars,err := plotter.NewBarChart(vals, BarWidth)
	if err != nil { return nil, err }
	bars.Color = BarColor.Color()
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)

	counts,err := plotter.NewLabels(plotter.XYLabels{XYs:xys, Labels:labels})
	if err != nil { return nil, err }
	for i := range counts.TextStyle {
		counts.TextStyle[i].XAlign = -0.5 // centred on the bar
	}
	counts.Offset = vg.Point{Y:vg.Points(3)}
	p.Add(counts)

	// leave room for the labels on the tallest bar
	p.Y.Max *= 1.1

	return p, nil
}

// }}}

// WritePNG renders a plot at the default size.
func WritePNG(p *plot.Plot, w io.Writer) error {
	wt,err := p.WriterTo(PNGWidth, PNGHeight, "png")
	if err != nil { return err }
	_,err = wt.WriteTo(w)
	return err
}
