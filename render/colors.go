package render

import(
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is a colour as gofpdf wants it, each component in [0,255].
type RGB [3]int

func MustHex(s string) RGB {
	c,err := ParseHex(s)
	if err != nil { panic(err) }
	return c
}

func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 { return RGB{}, fmt.Errorf("colour '%s': want #RRGGBB", s) }
	v,err := strconv.ParseUint(s, 16, 32)
	if err != nil { return RGB{}, fmt.Errorf("colour '%s': %w", s, err) }
	return RGB{int(v>>16)&0xff, int(v>>8)&0xff, int(v)&0xff}, nil
}

func (c RGB)Color() color.Color {
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 0xff}
}

func (c RGB)String() string { return fmt.Sprintf("#%02X%02X%02X", c[0], c[1], c[2]) }

var(
	BarColor   = MustHex("#4364A2")
	EdgeColor  = MustHex("#4364A2")
	HomeColor  = MustHex("#8C1515")
	NodeColor  = MustHex("#D59439")
	FrameColor = MustHex("#000000")
	GridColor  = MustHex("#E0E0E0")

	// http://www.perbang.dk/rgbgradient/
	grad12 = []string{
		"#00BFA9",
		"#00C266",
		"#00C521",
		"#25C900",
		"#6FCC00",
		"#BBD000",
		"#D39D00",
		"#D75300",
		"#DA0600",
		"#DE0048",
		"#E10099",
		"#DB00E5",
	}

	continentColors = map[string]string{
		"Asia":          "#DA0600",
		"Europe":        "#00BFA9",
		"Africa":        "#D39D00",
		"North America": "#4364A2",
		"South America": "#25C900",
		"Oceania":       "#E10099",
	}
)

// PaletteColor cycles through the gradient; route i gets colour i.
func PaletteColor(i int) RGB {
	if i < 0 { i = -i }
	return MustHex(grad12[(i*5)%len(grad12)])
}

func ContinentColor(continent string) RGB {
	if hex,exists := continentColors[continent]; exists { return MustHex(hex) }
	return MustHex("#707070")
}
