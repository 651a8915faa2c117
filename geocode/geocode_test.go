package geocode

// go test -v github.com/skypies/flightquota/geocode

import(
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fq "github.com/skypies/flightquota"
)

func newServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	s := httptest.NewServer(h)
	t.Cleanup(s.Close)
	return s
}

func TestNominatimFound(t *testing.T) {
	var gotQ, gotUA, gotLimit string
	s := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQ,gotLimit = r.URL.Query().Get("q"), r.URL.Query().Get("limit")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"lat":"40.6413","lon":"-73.7781","display_name":"JFK"}]`)
	})

	n := NewNominatim(s.URL, "flightquota-test", time.Second, 0)
	loc,err := n.Geocode(context.Background(), "John F. Kennedy International Airport")
	require.NoError(t, err)
	assert.InDelta(t, 40.6413, loc.Lat, 1e-9)
	assert.InDelta(t, -73.7781, loc.Long, 1e-9)
	assert.Equal(t, "John F. Kennedy International Airport", gotQ)
	assert.Equal(t, "1", gotLimit)
	assert.Equal(t, "flightquota-test", gotUA)
}

func TestNominatimNotFound(t *testing.T) {
	s := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	_,err := NewNominatim(s.URL, "", time.Second, 0).Geocode(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNominatimHTTPError(t *testing.T) {
	calls := 0
	s := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	_,err := NewNominatim(s.URL, "", time.Second, 0).Geocode(context.Background(), "x")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "503")
	assert.Equal(t, 1, calls, "no retries")
}

func TestNominatimBadBody(t *testing.T) {
	s := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{not json`)
	})
	_,err := NewNominatim(s.URL, "", time.Second, 0).Geocode(context.Background(), "x")
	assert.Error(t, err)
}

type upper struct{}
func (upper)Query(name string) string { return "Q:"+name }

func TestResolve(t *testing.T) {
	g := Static{
		"Q:北京": fq.Location{Lat:39.9, Long:116.4},
		"Q:纽约": fq.Location{Lat:40.7, Long:-74.0},
	}
	rs := Resolve(context.Background(), g, []string{"北京","亚特兰蒂斯","纽约"}, upper{}, nil)

	require.Len(t, rs, 3)
	assert.Equal(t, "Q:亚特兰蒂斯", rs[1].Query)
	assert.ErrorIs(t, rs[1].Err, ErrNotFound)

	locs := rs.Locations()
	assert.Len(t, locs, 2)
	_,exists := locs["亚特兰蒂斯"]
	assert.False(t, exists)
	assert.Equal(t, []string{"亚特兰蒂斯"}, rs.Failures())
}

func TestResolveCancelled(t *testing.T) {
	ctx,cancel := context.WithCancel(context.Background())
	cancel()
	rs := Resolve(ctx, Static{"a":fq.Location{}}, []string{"a","b"}, nil, nil)
	assert.Equal(t, []string{"a","b"}, rs.Failures())
	assert.ErrorIs(t, rs[0].Err, context.Canceled)
}

// {{{ cache

type memStore struct {
	m      map[string]string
	broken bool
}

func (s *memStore)Get(ctx context.Context, k string) (string, bool, error) {
	if s.broken { return "", false, errors.New("store down") }
	v,ok := s.m[k]
	return v, ok, nil
}
func (s *memStore)Set(ctx context.Context, k, v string, ttl time.Duration) error {
	if s.broken { return errors.New("store down") }
	s.m[k] = v
	return nil
}

type countingGeocoder struct {
	Static
	n int
}

func (c *countingGeocoder)Geocode(ctx context.Context, q string) (fq.Location, error) {
	c.n++
	return c.Static.Geocode(ctx, q)
}

func TestCached(t *testing.T) {
	inner := &countingGeocoder{Static: Static{"Tokyo": fq.Location{Lat:35.68, Long:139.76}}}
	store := &memStore{m:map[string]string{}}
	c := Cached{Geocoder:inner, Store:store}

	for i:=0; i<3; i++ {
		loc,err := c.Geocode(context.Background(), "Tokyo")
		require.NoError(t, err)
		assert.InDelta(t, 139.76, loc.Long, 1e-9)
	}
	assert.Equal(t, 1, inner.n)
	assert.Equal(t, "35.68,139.76", store.m["geocode:tokyo"])

	// failures are not cached
	for i:=0; i<2; i++ {
		_,err := c.Geocode(context.Background(), "Nowhere")
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.Equal(t, 3, inner.n)
}

func TestCachedBrokenStore(t *testing.T) {
	inner := &countingGeocoder{Static: Static{"Tokyo": fq.Location{Lat:35.68, Long:139.76}}}
	c := Cached{Geocoder:inner, Store:&memStore{broken:true}}
	loc,err := c.Geocode(context.Background(), "Tokyo")
	require.NoError(t, err)
	assert.InDelta(t, 35.68, loc.Lat, 1e-9)
}

func TestDecodeLocation(t *testing.T) {
	_,err := decodeLocation("1.0")
	assert.Error(t, err)
	loc,err := decodeLocation(encodeLocation(fq.Location{Lat:-33.9, Long:151.2}))
	require.NoError(t, err)
	assert.Equal(t, fq.Location{Lat:-33.9, Long:151.2}, loc)
}

// }}}
