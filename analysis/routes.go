package analysis

import(
	"fmt"

	fq "github.com/skypies/flightquota"
)

// RouteSelection is every route serving a focus country.
type RouteSelection struct {
	Country  string
	All      []string // every matching route, in record order
	Selected []string // the passenger-cargo-mixed subset
	Cities   []string // distinct cities across All, first-seen order
}

// {{{ SelectRoutes

// SelectRoutes picks the records whose destination mentions the country (composites
// included), and collects their routes and cities.
func SelectRoutes(records []fq.FlightRecord, country string) (RouteSelection, error) {
	rs := RouteSelection{Country:country}
	seen := map[string]bool{}

	for i,r := range records {
		if !r.HasCountry(country) { continue }

		cities,err := r.Cities()
		if err != nil {
			return RouteSelection{}, fmt.Errorf("record %d (%s): %w", i, r, err)
		}

		rs.All = append(rs.All, r.Route)
		if r.IsPassengerCargoMixed() {
			rs.Selected = append(rs.Selected, r.Route)
		}
		for _,c := range cities {
			if !seen[c] {
				seen[c] = true
				rs.Cities = append(rs.Cities, c)
			}
		}
	}

	return rs, nil
}

// }}}

// A Path is a route with positions for every city.
type Path struct {
	Route  string
	Cities []string
	Points []fq.Location
}

// {{{ p.DistKM

// DistKM is the great-circle length of the path, summed leg by leg.
func (p Path)DistKM() float64 {
	d := 0.0
	for i := 1; i < len(p.Points); i++ {
		d += p.Points[i-1].DistKM(p.Points[i])
	}
	return d
}

// }}}
// {{{ ResolvePaths

// ResolvePaths turns routes into paths. A route with any city missing from the locations
// can't be drawn; it is returned in the unresolved list (with the first missing city)
// rather than drawn with a hole in it.
func ResolvePaths(routes []string, locs fq.CityLocations) ([]Path, []string, error) {
	paths := []Path{}
	unresolved := []string{}

	for _,route := range routes {
		cities,err := fq.SplitRoute(route)
		if err != nil { return nil, nil, err }

		p := Path{Route:route, Cities:cities}
		for _,c := range cities {
			loc,exists := locs.Lookup(c)
			if !exists {
				unresolved = append(unresolved, fmt.Sprintf("%s (no location for %s)", route, c))
				p.Points = nil
				break
			}
			p.Points = append(p.Points, loc)
		}
		if p.Points != nil {
			paths = append(paths, p)
		}
	}

	return paths, unresolved, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
