// Package ref contains the reference tables the analysis joins against: diaspora
// populations per country, continents per country, and the city name aliases used
// for geocoding.
package ref

import(
	_ "embed"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/skypies/geo"
)

//go:embed aliases.csv
var aliasesCSV string

// CityAlias maps a city name, as written in the route column, to the string a
// geocoder understands. Pos is a known-good position, for running offline.
type CityAlias struct {
	Name   string
	Query  string
	Pos    geo.Latlong
}

// We build a small map, from route city names to their aliases.
type CityAliases struct {
	Map map[string]CityAlias
}

func (ca CityAliases)String() string {
	str := fmt.Sprintf("--- city aliases (%d entries) ---\n", len(ca.Map))
	names := []string{}
	for k,_ := range ca.Map { names = append(names, k) }
	sort.Strings(names)
	for _,n := range names {
		str += fmt.Sprintf(" %-12s -> %s\n", n, ca.Map[n].Query)
	}
	return str
}

// {{{ NewCityAliases

// NewCityAliases parses the embedded alias table.
func NewCityAliases() (*CityAliases, error) {
	return parseCityAliases(aliasesCSV)
}

func parseCityAliases(data string) (*CityAliases, error) {
	rows,err := csv.NewReader(strings.NewReader(data)).ReadAll()
	if err != nil { return nil, fmt.Errorf("city aliases: %w", err) }
	if len(rows) == 0 { return nil, fmt.Errorf("city aliases: empty table") }

	ca := CityAliases{Map:map[string]CityAlias{}}
	for i,row := range rows[1:] {
		if len(row) != 4 {
			return nil, fmt.Errorf("city aliases line %d: want 4 fields, got %d", i+2, len(row))
		}
		lat,err1  := strconv.ParseFloat(row[2], 64)
		long,err2 := strconv.ParseFloat(row[3], 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("city aliases line %d: bad position (%s,%s)", i+2, row[2], row[3])
		}
		ca.Map[row[0]] = CityAlias{Name:row[0], Query:row[1], Pos:geo.Latlong{Lat:lat, Long:long}}
	}

	return &ca, nil
}

// }}}

// Query returns what to ask a geocoder for; unknown names are passed through as-is.
func (ca *CityAliases)Query(name string) string {
	if a,exists := ca.Map[name]; exists { return a.Query }
	return name
}

func (ca *CityAliases)Get(name string) (CityAlias, bool) {
	a,exists := ca.Map[name]
	return a,exists
}

// Positions returns the known-good positions, keyed by geocoder query, for offline runs.
func (ca *CityAliases)Positions() map[string]geo.Latlong {
	out := map[string]geo.Latlong{}
	for _,a := range ca.Map { out[a.Query] = a.Pos }
	return out
}
