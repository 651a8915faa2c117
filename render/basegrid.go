package render

import(
	"github.com/jung-kurt/gofpdf"
)

// Describes a grid we're going to plot over, and the location of its top-left corner in
// PDF space.
type BaseGrid struct {
	*gofpdf.Fpdf        // Embed the thing we're writing to

	// The portion of PDF page space the grid is drawn over (labels go outside of this)
	OffsetU     float64 // where the origin (top-left) should be, in PDF coords
	OffsetV     float64
	W,H         float64 // width and height of the grid, in PDF units (mm)

	// The range of values that are scaled onto the grid. The origin is bottom-left.
	MinX,MinY,MaxX,MaxY float64
	Clip                bool    // whether to skip lines that leave the grid

	LineColor RGB
}

// {{{ bg.U, V, UV

// the bools are whether the coords are out-of-bounds for the grid.
func (bg BaseGrid)U(x float64) (float64, bool) {
	xRatio := (x - bg.MinX) / (bg.MaxX - bg.MinX)
	u := bg.OffsetU + (xRatio * bg.W)
	return u, xRatio<0 || xRatio>1
}

func (bg BaseGrid)V(y float64) (float64, bool) {
	yRatio := (y - bg.MinY) / (bg.MaxY - bg.MinY)
	v := bg.OffsetV + (bg.H - (yRatio * bg.H)) // In PDF, the Y scale goes down the page
	return v, yRatio<0 || yRatio>1
}

func (bg BaseGrid)UV(x,y float64) (float64, float64, bool) {
	u,oobU := bg.U(x)
	v,oobV := bg.V(y)
	return u, v, (oobU || oobV)
}

// }}}
// {{{ bg.MoveTo, LineTo, Line

// We submit coords in gridspace (e.g. x,y), and the grid transforms them into PDFspace.
func (bg BaseGrid)MoveTo(x,y float64) bool {
	u,v,oob := bg.UV(x,y)
	bg.Fpdf.MoveTo(u,v)
	return oob
}

func (bg BaseGrid)LineTo(x,y float64) bool {
	u,v,oob := bg.UV(x,y)
	bg.Fpdf.LineTo(u,v)
	return oob
}

// Only draw the line if both points are inside bounds
func (bg BaseGrid)Line(x1,y1,x2,y2 float64) {
	u1,v1,oob1 := bg.UV(x1,y1)
	u2,v2,oob2 := bg.UV(x2,y2)

	if !bg.Clip || (!oob1 && !oob2) {
		bg.Fpdf.MoveTo(u1,v1)
		bg.Fpdf.LineTo(u2,v2)
	}

	bg.DrawPath("D")
}

// }}}
// {{{ bg.DrawFrame

func (bg BaseGrid)DrawFrame() {
	bg.SetDrawColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	bg.SetLineWidth(0.5)
	bg.Rect(bg.OffsetU, bg.OffsetV, bg.W, bg.H, "D")
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
