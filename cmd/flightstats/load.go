package main

import(
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/skypies/flightquota/geocode"
	"github.com/skypies/flightquota/ref"
	"github.com/skypies/flightquota/sheet"
)

type dataset struct {
	populations *ref.Populations // nil if the table could not be read
	continents  ref.Continents
	aliases     *ref.CityAliases
	countries   *ref.CountryPositions
}

// {{{ r.dataset

// The population and continent tables only feed the node weights and the bubble map, so
// failing to read them is logged rather than fatal.
func (r *run)dataset(ctx context.Context) (*dataset, error) {
	if r.data != nil { return r.data, nil }

	d := dataset{}

	aliases,err := ref.NewCityAliases()
	if err != nil { return nil, err }
	d.aliases = aliases

	if d.countries,err = ref.NewCountryPositions(); err != nil { return nil, err }

	if rows,err := sheet.ReadTablePath(ctx, r.cfg.Input.Populations, r.cfg.Input.PopulationsSheet); err != nil {
		r.log.Warn("population table unavailable", zap.String("path", r.cfg.Input.Populations), zap.Error(err))
	} else if pops,err := ref.NewPopulations(rows); err != nil {
		r.log.Warn("population table unusable", zap.String("path", r.cfg.Input.Populations), zap.Error(err))
	} else {
		d.populations = pops
	}

	if rdr,err := sheet.Open(ctx, r.cfg.Input.Continents); err != nil {
		r.log.Warn("continent table unavailable", zap.String("path", r.cfg.Input.Continents), zap.Error(err))
	} else {
		defer rdr.Close()
		if d.continents,err = ref.ReadContinents(rdr); err != nil {
			r.log.Warn("continent table unusable", zap.String("path", r.cfg.Input.Continents), zap.Error(err))
		}
	}

	r.data = &d
	return r.data, nil
}

// }}}
// {{{ r.geocoder

// geocoder is Nominatim, behind the Redis cache when one is configured; offline runs
// only know the embedded city and country positions.
func (r *run)geocoder(ctx context.Context, d *dataset) (geocode.Geocoder, func(), error) {
	gc := r.cfg.Geocode
	if gc.Offline { return d.offlineGeocoder(), func(){}, nil }

	var g geocode.Geocoder = geocode.NewNominatim(gc.Endpoint, gc.UserAgent, gc.Timeout, gc.RatePerSec)

	if r.cfg.Redis.Addr == "" { return g, func(){}, nil }

	store,err := geocode.NewRedisStore(ctx, r.cfg.Redis.Addr, r.cfg.Redis.Password, r.cfg.Redis.DB)
	if err != nil {
		r.log.Warn("geocode cache unavailable", zap.Error(err))
		return g, func(){}, nil
	}

	cached := geocode.Cached{Geocoder:g, Store:store, TTL:r.cfg.Redis.TTL, Logger:r.log}
	return cached, func(){ store.Close() }, nil
}

// }}}

func (d *dataset)offlineGeocoder() geocode.Static {
	static := geocode.Static{}
	for q,pos := range d.aliases.Positions() { static[q] = pos }
	for q,pos := range d.countries.Positions() { static[q] = pos }
	return static
}

func (r *run)requirePopulations(d *dataset) error {
	if d.populations == nil {
		return fmt.Errorf("no population table (%s)", r.cfg.Input.Populations)
	}
	return nil
}
