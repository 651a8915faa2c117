package render

import(
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/skypies/flightquota/analysis"
)

var(
	// Node sizes are areas, in square points.
	HomeNodeArea    = 500.0
	DefaultNodeArea = 300.0
	MinNodeArea     = 20.0

	EdgeWidthScale  = 100.0 // points per unit of edge weight
	MinEdgeWidth    = 0.5
	MaxEdgeWidth    = 40.0

	LayoutUpdates   = 200
)

// NetworkGraph lays out the home country joined to every other country, and draws it.
// Nodes lacking a weight (or all of them, if nodes is nil) get a uniform size.
func NetworkGraph(home string, edges []analysis.WeightedEdge, nodes []analysis.WeightedNode) (*plot.Plot, error) {
	if len(edges) == 0 { return nil, fmt.Errorf("network graph: %w", ErrNoData) }

	// {{{ build the graph

	g := simple.NewWeightedUndirectedGraph(0, 0)
	names := []string{home}
	ids := map[string]int64{home:0}
	idFor := func(name string) int64 {
		if id,exists := ids[name]; exists { return id }
		ids[name] = int64(len(names))
		names = append(names, name)
		return ids[name]
	}

	g.AddNode(simple.Node(0))
	for _,e := range edges {
		from,to := idFor(e.From), idFor(e.To)
		if from == to { continue }
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(from), simple.Node(to), e.Weight))
	}

	// }}}

	eades := layout.EadesR2{Updates:LayoutUpdates, Repulsion:1, Rate:0.05, Theta:0.2}
	o := layout.NewOptimizerR2(g, eades.Update)
	for o.Update() {}

	xyFor := func(name string) plotter.XY {
		v := o.Coord2(ids[name])
		return plotter.XY{X:v.X, Y:v.Y}
	}

	p := plot.New()
	p.HideAxes()

	// {{{ edges

	for _,e := range edges {
		if e.From == e.To { continue }
		line,err := plotter.NewLine(plotter.XYs{xyFor(e.From), xyFor(e.To)})
		if err != nil { return nil, err }
		w := math.Min(math.Max(e.Weight*EdgeWidthScale, MinEdgeWidth), MaxEdgeWidth)
		line.LineStyle.Width = vg.Points(w)
		line.LineStyle.Color = EdgeColor.Color()
		p.Add(line)
	}

	// }}}
	// {{{ nodes

	area := map[string]float64{}
	for _,n := range nodes { area[n.Name] = n.Weight }

	xys := plotter.XYs{}
	for _,name := range names { xys = append(xys, xyFor(name)) }

	scatter,err := plotter.NewScatter(xys)
	if err != nil { return nil, err }
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		gs := draw.GlyphStyle{Shape:draw.CircleGlyph{}, Color:NodeColor.Color()}
		a := DefaultNodeArea
		if i == 0 {
			a = HomeNodeArea
			gs.Color = HomeColor.Color()
		} else if w,exists := area[names[i]]; exists {
			a = math.Max(w, MinNodeArea) // the transform goes negative for tiny populations
		}
		gs.Radius = vg.Points(math.Sqrt(a) / 2)
		return gs
	}
	p.Add(scatter)

	labels,err := plotter.NewLabels(plotter.XYLabels{XYs:xys, Labels:names})
	if err != nil { return nil, err }
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = -0.5
		labels.TextStyle[i].YAlign = -0.5
		labels.TextStyle[i].Font.Size = vg.Points(7)
	}
	p.Add(labels)

	// }}}

	// pad so the biggest nodes aren't clipped
	p.X.Padding, p.Y.Padding = vg.Points(30), vg.Points(30)

	return p, nil
}
