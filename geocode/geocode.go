// Package geocode finds positions for place names. Lookups are best-effort: each name
// gets exactly one attempt, and failures are reported as results rather than dropped.
package geocode

import(
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	fq "github.com/skypies/flightquota"
)

var ErrNotFound = errors.New("no match")

type Geocoder interface {
	Geocode(ctx context.Context, query string) (fq.Location, error)
}

// A Querier rewrites a name into what the geocoder should be asked for
// (ref.CityAliases is one).
type Querier interface {
	Query(name string) string
}

// Result is the outcome of one lookup. Err is nil on success.
type Result struct {
	Name      string
	Query     string
	Location  fq.Location
	Err       error
}

func (r Result)OK() bool { return r.Err == nil }

func (r Result)String() string {
	if r.OK() {
		return fmt.Sprintf("%s [%s] (%.6f, %.6f)", r.Name, r.Query, r.Location.Lat, r.Location.Long)
	}
	return fmt.Sprintf("%s [%s] FAILED: %v", r.Name, r.Query, r.Err)
}

type Results []Result

// Locations has an entry for each name that was found, and nothing else.
func (rs Results)Locations() fq.CityLocations {
	out := fq.CityLocations{}
	for _,r := range rs {
		if r.OK() { out[r.Name] = r.Location }
	}
	return out
}

// Failures lists the names that never succeeded, in input order.
func (rs Results)Failures() []string {
	succeeded := map[string]bool{}
	for _,r := range rs {
		if r.OK() { succeeded[r.Name] = true }
	}
	out := []string{}
	seen := map[string]bool{}
	for _,r := range rs {
		if succeeded[r.Name] || seen[r.Name] { continue }
		seen[r.Name] = true
		out = append(out, r.Name)
	}
	return out
}

func (rs Results)String() string {
	str := fmt.Sprintf("--- geocoding (%d names, %d failed) ---\n", len(rs), len(rs.Failures()))
	for i,r := range rs {
		str += fmt.Sprintf(" [%2d] %s\n", i, r)
	}
	return str
}

// {{{ Resolve

// Resolve looks up every name once, in order. If the context is cancelled, the names not
// yet attempted are reported as failed with the context's error.
func Resolve(ctx context.Context, g Geocoder, names []string, q Querier, logger *zap.Logger) Results {
	if logger == nil { logger = zap.NewNop() }

	out := Results{}
	for _,name := range names {
		query := name
		if q != nil { query = q.Query(name) }

		r := Result{Name:name, Query:query}
		if err := ctx.Err(); err != nil {
			r.Err = err
		} else {
			r.Location,r.Err = g.Geocode(ctx, query)
		}

		if r.OK() {
			logger.Debug("geocoded", zap.String("name", name), zap.String("query", query),
				zap.Float64("lat", r.Location.Lat), zap.Float64("long", r.Location.Long))
		} else {
			logger.Warn("geocode failed", zap.String("name", name), zap.String("query", query),
				zap.Error(r.Err))
		}
		out = append(out, r)
	}

	return out
}

// }}}

// Static answers from a fixed table; for offline runs and tests.
type Static map[string]fq.Location

func (s Static)Geocode(ctx context.Context, query string) (fq.Location, error) {
	if loc,exists := s[query]; exists { return loc, nil }
	return fq.Location{}, fmt.Errorf("static '%s': %w", query, ErrNotFound)
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
