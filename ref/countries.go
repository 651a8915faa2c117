package ref

import(
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/skypies/geo"
)

//go:embed countries.csv
var countriesCSV string

// CountryPosition is a rough middle of a country; enough to place a bubble on a world map
// without asking a geocoder.
type CountryPosition struct {
	ISOCode  string
	Name     string
	Pos      geo.Latlong
}

type CountryPositions struct {
	ByName map[string]CountryPosition
	ByISO  map[string]CountryPosition
}

// {{{ NewCountryPositions

// NewCountryPositions parses the embedded table, keyed by English name and by ISO code.
func NewCountryPositions() (*CountryPositions, error) {
	return parseCountryPositions(countriesCSV)
}

func parseCountryPositions(data string) (*CountryPositions, error) {
	rows,err := csv.NewReader(strings.NewReader(data)).ReadAll()
	if err != nil { return nil, fmt.Errorf("country positions: %w", err) }
	if len(rows) < 2 { return nil, fmt.Errorf("country positions: empty table") }

	cp := CountryPositions{ByName:map[string]CountryPosition{}, ByISO:map[string]CountryPosition{}}
	for i,row := range rows[1:] {
		if len(row) != 4 {
			return nil, fmt.Errorf("country positions line %d: want 4 fields, got %d", i+2, len(row))
		}
		lat,err1  := strconv.ParseFloat(row[2], 64)
		long,err2 := strconv.ParseFloat(row[3], 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("country positions line %d: bad position (%s,%s)", i+2, row[2], row[3])
		}
		c := CountryPosition{ISOCode:row[0], Name:row[1], Pos:geo.Latlong{Lat:lat, Long:long}}
		cp.ByName[c.Name] = c
		cp.ByISO[c.ISOCode] = c
	}

	return &cp, nil
}

// }}}

// Lookup tries the English name, then the ISO code.
func (cp *CountryPositions)Lookup(englishName, iso string) (CountryPosition, bool) {
	if c,exists := cp.ByName[strings.TrimSpace(englishName)]; exists { return c, true }
	c,exists := cp.ByISO[strings.ToUpper(strings.TrimSpace(iso))]
	return c, exists
}

// Positions returns every position keyed by English name, the way the country bubbles
// query a geocoder.
func (cp *CountryPositions)Positions() map[string]geo.Latlong {
	out := map[string]geo.Latlong{}
	for n,c := range cp.ByName { out[n] = c.Pos }
	return out
}
