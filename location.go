package flightquota

import(
	"fmt"
	"sort"

	"github.com/skypies/geo"
)

// A Location is a position on the globe.
type Location = geo.Latlong

// CityLocations maps a name to where it is. An absent name is one we could not find;
// there are no nil entries.
type CityLocations map[string]Location

func (cl CityLocations)Lookup(name string) (Location, bool) {
	loc,exists := cl[name]
	return loc,exists
}

// Names returns the known names, sorted
func (cl CityLocations)Names() []string {
	names := []string{}
	for k,_ := range cl { names = append(names, k) }
	sort.Strings(names)
	return names
}

func (cl CityLocations)String() string {
	str := fmt.Sprintf("--- city locations (%d entries) ---\n", len(cl))
	for _,name := range cl.Names() {
		str += fmt.Sprintf(" %-16s (%.6f, %.6f)\n", name, cl[name].Lat, cl[name].Long)
	}
	return str
}
