package render

import(
	"fmt"
	"io"
	"math"
	"sort"

	fq "github.com/skypies/flightquota"
)

// A Bubble is one country on the bubble map.
type Bubble struct {
	Country    string
	Label      string // short ASCII name, e.g. the ISO code
	Continent  string
	Quota      int
	Location   fq.Location
}

var MaxBubbleRadiusMM = 12.0

// {{{ wm.DrawBubbles

// DrawBubbles places a circle on each country with area proportional to its quota, colours
// it by continent, and adds a continent legend.
func (wm *WorldMap)DrawBubbles(bubbles []Bubble) {
	maxQuota := 0
	for _,b := range bubbles {
		if b.Quota > maxQuota { maxQuota = b.Quota }
	}
	if maxQuota == 0 { return }

	// biggest first, so small bubbles stay visible on top
	sorted := append([]Bubble{}, bubbles...)
	sort.SliceStable(sorted, func(i,j int) bool { return sorted[i].Quota > sorted[j].Quota })

	wm.SetLineWidth(0.2)
	wm.SetAlpha(0.7, "Normal")
	for _,b := range sorted {
		r := MaxBubbleRadiusMM * math.Sqrt(float64(b.Quota)/float64(maxQuota))
		if r < 0.5 { r = 0.5 }

		u,v,_ := wm.UV(wm.Project(b.Location))
		c := ContinentColor(b.Continent)
		wm.SetFillColor(c[0], c[1], c[2])
		wm.SetDrawColor(0xff, 0xff, 0xff)
		wm.Circle(u, v, r, "FD")
	}
	wm.SetAlpha(1.0, "Normal")

	wm.Font.setPDFFont(wm.Fpdf, 5)
	wm.SetTextColor(0, 0, 0)
	for _,b := range sorted {
		u,v,_ := wm.UV(wm.Project(b.Location))
		wm.Fpdf.MoveTo(u-10, v-2)
		wm.CellFormat(20, 4, wm.Font.label(b.Country, b.Label), "", 0, "C", false, 0, "")
	}

	wm.drawContinentLegend(bubbles)
}

func (wm *WorldMap)drawContinentLegend(bubbles []Bubble) {
	continents := []string{}
	seen := map[string]bool{}
	for _,b := range bubbles {
		if !seen[b.Continent] {
			seen[b.Continent] = true
			continents = append(continents, b.Continent)
		}
	}
	sort.Strings(continents)

	wm.Font.setPDFFont(wm.Fpdf, 7)
	top := wm.OffsetV + wm.H + 4
	for i,cont := range continents {
		x := wm.OffsetU + float64(i)*40
		c := ContinentColor(cont)
		wm.SetFillColor(c[0], c[1], c[2])
		wm.Circle(x+2, top+2, 1.5, "F")
		wm.Fpdf.MoveTo(x+5, top)
		wm.Cell(34, 4, cont)
	}
}

// }}}

// WriteBubbleMap is the whole country bubble map in one go.
func WriteBubbleMap(w io.Writer, title string, bubbles []Bubble, font *Font) error {
	if len(bubbles) == 0 { return fmt.Errorf("bubble map: %w", ErrNoData) }
	wm := NewWorldMap(title, font)
	wm.DrawBubbles(bubbles)
	return wm.Write(w)
}
