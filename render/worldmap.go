package render

import(
	"fmt"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"
	gogeo "github.com/paulmach/go.geo"

	fq "github.com/skypies/flightquota"
	"github.com/skypies/flightquota/analysis"
)

// {{{ notes

/* The world map is a Mercator projection, cut at 60S and 80N, and centred on a chosen
   meridian; the default of 150E keeps China and the Americas on the same side of the
   antimeridian, so transpacific routes don't get drawn the long way round.

   Grid space is degrees: x is longitude relative to the central meridian, y is the
   Mercator ordinate rescaled so that the equator runs from -180 to 180 like x does.

 */

// }}}

// WorldMap is a page with a projected world on it.
type WorldMap struct {
	BaseGrid
	CentralMeridian float64
	Font            *Font
	Title           string
}

var(
	MapSouth = -60.0
	MapNorth =  80.0
	MapCentralMeridian = 150.0
)

// wrapLong puts a longitude into [-180,180).
func wrapLong(long float64) float64 {
	long = math.Mod(long+180, 360)
	if long < 0 { long += 360 }
	return long - 180
}

// mercatorY is the projected latitude, in the same units as longitude.
func mercatorY(lat float64) float64 {
	p := gogeo.NewPoint(0, lat)
	gogeo.Mercator.Project(p)
	edge := gogeo.NewPoint(180, 0)
	gogeo.Mercator.Project(edge)
	return p.Y() / edge.X() * 180
}

// {{{ NewWorldMap

func NewWorldMap(title string, font *Font) *WorldMap {
	pdf := gofpdf.New("L", "mm", "A4", "")
	font.registerPDF(pdf)
	pdf.AddPage()

	wm := WorldMap{
		BaseGrid: BaseGrid{
			Fpdf: pdf,
			OffsetU: 10, OffsetV: 20,
			W: 277, H: 150,
			MinX: -180, MaxX: 180,
			MinY: mercatorY(MapSouth), MaxY: mercatorY(MapNorth),
			Clip: true,
			LineColor: FrameColor,
		},
		CentralMeridian: MapCentralMeridian,
		Font: font,
		Title: title,
	}

	wm.drawGraticule()
	wm.DrawFrame()

	font.setPDFFont(pdf, 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.MoveTo(10, 8)
	pdf.Cell(200, 8, font.label(title, "world map"))

	return &wm
}

// }}}
// {{{ wm.Project

// Project maps a position into grid space.
func (wm *WorldMap)Project(l fq.Location) (float64, float64) {
	lat := math.Max(MapSouth, math.Min(MapNorth, l.Lat))
	return wrapLong(l.Long - wm.CentralMeridian), mercatorY(lat)
}

// }}}
// {{{ wm.drawGraticule

func (wm *WorldMap)drawGraticule() {
	wm.SetLineWidth(0.1)
	wm.SetDrawColor(GridColor[0], GridColor[1], GridColor[2])
	wm.Font.setPDFFont(wm.Fpdf, 6)
	wm.SetTextColor(0x70, 0x70, 0x70)

	for lat := -60.0; lat <= 80.0; lat += 20 {
		y := mercatorY(lat)
		wm.Line(wm.MinX, y, wm.MaxX, y)
		u,v,_ := wm.UV(wm.MinX, y)
		wm.Fpdf.MoveTo(u-9, v-2)
		wm.CellFormat(8, 4, fmt.Sprintf("%.0f", lat), "", 0, "R", false, 0, "")
	}

	for dx := -180.0; dx < 180.0; dx += 30 {
		wm.Line(dx, wm.MinY, dx, wm.MaxY)
		u,v,_ := wm.UV(dx, wm.MinY)
		wm.Fpdf.MoveTo(u-4, v+1)
		wm.CellFormat(8, 4, fmt.Sprintf("%.0f", wrapLong(dx+wm.CentralMeridian)), "", 0, "C", false, 0, "")
	}
}

// }}}

// {{{ wm.DrawPaths

// DrawPaths draws each path as a coloured polyline with a marker on every city, and a
// legend down the bottom.
func (wm *WorldMap)DrawPaths(paths []analysis.Path) {
	for i,path := range paths {
		c := PaletteColor(i)
		wm.SetDrawColor(c[0], c[1], c[2])
		wm.SetFillColor(c[0], c[1], c[2])
		wm.SetLineWidth(0.4)

		prevX := 0.0
		for j,pt := range path.Points {
			x,y := wm.Project(pt)
			if j == 0 || math.Abs(x-prevX) > 180 { // a leg that would wrap round the map edge
				wm.MoveTo(x,y)
			} else {
				wm.LineTo(x,y)
			}
			prevX = x
		}
		wm.DrawPath("D")
		for _,pt := range path.Points {
			u,v,_ := wm.UV(wm.Project(pt))
			wm.Circle(u, v, 0.8, "F")
		}
	}

	wm.drawPathLegend(paths)
}

func (wm *WorldMap)drawPathLegend(paths []analysis.Path) {
	wm.Font.setPDFFont(wm.Fpdf, 6)
	wm.SetTextColor(0, 0, 0)

	top := wm.OffsetV + wm.H + 4
	perCol := 6
	for i,path := range paths {
		col,row := i/perCol, i%perCol
		x := wm.OffsetU + float64(col)*70
		y := top + float64(row)*4

		c := PaletteColor(i)
		wm.SetFillColor(c[0], c[1], c[2])
		wm.Rect(x, y+1, 4, 2, "F")
		wm.Fpdf.MoveTo(x+5, y)
		fallback := fmt.Sprintf("route %d (%d cities)", i+1, len(path.Cities))
		text := fmt.Sprintf("%s  %.0fkm", wm.Font.label(path.Route, fallback), path.DistKM())
		wm.Cell(64, 4, text)
	}
}

// }}}

func (wm *WorldMap)Write(w io.Writer) error {
	return wm.Output(w)
}

// WriteFlightPaths is the whole flight path map in one go.
func WriteFlightPaths(w io.Writer, title string, paths []analysis.Path, font *Font) error {
	if len(paths) == 0 { return fmt.Errorf("flight paths: %w", ErrNoData) }
	wm := NewWorldMap(title, font)
	wm.DrawPaths(paths)
	return wm.Write(w)
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
