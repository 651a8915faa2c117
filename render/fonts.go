package render

import(
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
)

// Font is a TrueType font able to draw the Chinese labels. Without one, charts still
// render, but PDFs fall back to ASCII labels and plots draw missing glyphs.
type Font struct {
	Name  string
	data  []byte
	face  *opentype.Font
}

const fontName = "cjk"

func LoadFont(path string) (*Font, error) {
	data,err := os.ReadFile(path)
	if err != nil { return nil, fmt.Errorf("font: %w", err) }
	return ParseFont(data)
}

func ParseFont(data []byte) (*Font, error) {
	face,err := opentype.Parse(data)
	if err != nil { return nil, fmt.Errorf("font: %w", err) }
	return &Font{Name:fontName, data:data, face:face}, nil
}

// UseInPlots makes the font the default for every plot created afterwards.
func (f *Font)UseInPlots() {
	if f == nil { return }
	font.DefaultCache.Add(font.Collection{
		{Font: font.Font{Typeface:font.Typeface(f.Name)}, Face: f.face},
	})
	plot.DefaultFont = font.Font{Typeface:font.Typeface(f.Name)}
	plotter.DefaultFont = font.Font{Typeface:font.Typeface(f.Name)}
}

// registerPDF must be called once per document before setPDFFont.
func (f *Font)registerPDF(pdf *gofpdf.Fpdf) {
	if f == nil { return }
	pdf.AddUTF8FontFromBytes(f.Name, "", f.data)
}

func (f *Font)setPDFFont(pdf *gofpdf.Fpdf, size float64) {
	if f == nil {
		pdf.SetFont("Arial", "", size)
		return
	}
	pdf.SetFont(f.Name, "", size)
}

// label chooses what to print: the real text when the font can draw it, the fallback
// otherwise.
func (f *Font)label(text, fallback string) string {
	if f != nil || isASCII(text) { return text }
	return fallback
}

func isASCII(s string) bool {
	for _,r := range s {
		if r > 0x7e { return false }
	}
	return true
}
