package render

import(
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/skypies/flightquota/analysis"
)

func orbPoint(lat, long float64) orb.Point { return orb.Point{long, lat} }

// GeoJSON collects the routes (as LineStrings) and the country bubbles (as Points) into
// one FeatureCollection.
func GeoJSON(paths []analysis.Path, bubbles []Bubble) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _,p := range paths {
		ls := orb.LineString{}
		for _,pt := range p.Points {
			ls = append(ls, orbPoint(pt.Lat, pt.Long))
		}
		f := geojson.NewFeature(ls)
		f.Properties["route"] = p.Route
		f.Properties["cities"] = p.Cities
		f.Properties["dist_km"] = p.DistKM()
		fc.Append(f)
	}

	for _,b := range bubbles {
		f := geojson.NewFeature(orbPoint(b.Location.Lat, b.Location.Long))
		f.Properties["country"] = b.Country
		f.Properties["iso_code"] = b.Label
		f.Properties["continent"] = b.Continent
		f.Properties["flight_quota"] = b.Quota
		fc.Append(f)
	}

	return fc
}
