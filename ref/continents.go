package ref

import(
	"fmt"
	"io"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Countries missing from the continent table are assumed to be in Asia; most of the
// gaps in the source CSV (Laos, Qatar, Uzbekistan, ...) are.
const DefaultContinent = "Asia"

// Continents maps an English country name to its continent.
type Continents map[string]string

// {{{ ReadContinents

// ReadContinents parses a CSV with (at least) 'country' and 'continent' columns. When a
// country appears more than once, the first row wins.
func ReadContinents(rdr io.Reader) (Continents, error) {
	df := dataframe.ReadCSV(rdr,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil { return nil, fmt.Errorf("continent table: %w", df.Err) }

	have := map[string]bool{}
	for _,n := range df.Names() { have[n] = true }
	if !have["country"] || !have["continent"] {
		return nil, fmt.Errorf("continent table: need 'country' and 'continent' columns, have %v",
			df.Names())
	}

	countries  := df.Col("country").Records()
	continents := df.Col("continent").Records()

	c := Continents{}
	for i,country := range countries {
		country = strings.TrimSpace(country)
		if country == "" { continue }
		if _,exists := c[country]; !exists {
			c[country] = strings.TrimSpace(continents[i])
		}
	}

	return c, nil
}

// }}}

// Lookup returns the continent, and whether the country was actually known.
func (c Continents)Lookup(englishName string) (string, bool) {
	if cont,exists := c[strings.TrimSpace(englishName)]; exists && cont != "" {
		return cont, true
	}
	return DefaultContinent, false
}
