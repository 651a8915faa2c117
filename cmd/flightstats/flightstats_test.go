package main

// go test -v github.com/skypies/flightquota/cmd/flightstats

import(
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	fq "github.com/skypies/flightquota"
	"github.com/skypies/flightquota/config"
	"github.com/skypies/flightquota/geocode"
	"github.com/skypies/flightquota/publish"
	"github.com/skypies/flightquota/ref"
	"github.com/skypies/flightquota/report"
)

var testRecords = []fq.FlightRecord{
	{Carrier:"中国国际航空", CarrierCode:"CA", Flag:fq.PassengerCargoMixed, Country:"美国",
		Route:"北京首都-纽约肯尼迪", WeeklyQuota:7},
	{Carrier:"中国东方航空", CarrierCode:"MU", Flag:fq.PassengerCargoMixed, Country:"日本",
		Route:"上海浦东-东京成田", WeeklyQuota:14},
	{Carrier:"中国南方航空", CarrierCode:"CZ", Flag:fq.PassengerCargoMixed, Country:"英国",
		Route:"广州-伦敦希思罗", WeeklyQuota:3},
}

func testDataset(t *testing.T, popRows [][]string) *dataset {
	aliases,err := ref.NewCityAliases()
	require.NoError(t, err)
	countries,err := ref.NewCountryPositions()
	require.NoError(t, err)
	pops,err := ref.NewPopulations(popRows)
	require.NoError(t, err)

	return &dataset{
		populations: pops,
		continents: ref.Continents{"United States":"North America", "Japan":"Asia", "United Kingdom":"Europe"},
		aliases: aliases,
		countries: countries,
	}
}

// An offline run with a dataset already loaded, writing into a temp dir.
func testRun(t *testing.T, d *dataset) (*run, string) {
	dir := t.TempDir()
	sink,err := publish.NewSink(context.Background(), dir)
	require.NoError(t, err)

	cfg := &config.Config{
		Geocode: config.Geocode{Offline:true},
		Analysis: config.Analysis{HomeCountry:"中国", FocusCountry:"美国"},
	}
	return &run{cfg:cfg, log:zap.NewNop(), sink:sink, records:testRecords, data:d}, dir
}

func TestOfflineGeocoderKnowsCountries(t *testing.T) {
	d := testDataset(t, [][]string{{"国家", "华人人口", "代码", "英文名"}, {"美国", "1", "USA", "United States"}})

	names := []string{"United States", "Japan", "United Kingdom", "Fuzhou"}
	results := geocode.Resolve(context.Background(), d.offlineGeocoder(), names, nil, nil)

	assert.Empty(t, results.Failures())
	assert.Len(t, results.Locations(), 4)
}

func TestPlaceBubbles(t *testing.T) {
	cp,err := ref.NewCountryPositions()
	require.NoError(t, err)

	rows := []report.CountryRow{
		{Country:"美国", Quota:7, ISOCode:"USA", EnglishName:"United States"},
		{Country:"英国", Quota:3, ISOCode:"GBR", EnglishName:"Great Britain"}, // placed by ISO code
		{Country:"某国", Quota:1, ISOCode:"XXX", EnglishName:"Nowhere"},
	}
	locs := fq.CityLocations{"United States": fq.Location{Lat:38.9, Long:-77.0}}

	bubbles := placeBubbles(rows, locs, cp, zap.NewNop())
	require.Len(t, bubbles, 2)
	assert.Equal(t, 38.9, bubbles[0].Location.Lat) // the geocoded position wins
	assert.Equal(t, "英国", bubbles[1].Country)
	assert.InDelta(t, 55.4, bubbles[1].Location.Lat, 0.1)

	assert.Empty(t, placeBubbles(rows[2:], nil, cp, zap.NewNop()))
}

func TestBubblesOffline(t *testing.T) {
	d := testDataset(t, [][]string{
		{"国家", "华人人口", "代码", "英文名"},
		{"美国", "5025817", "USA", "United States"},
		{"日本", "922000", "JPN", "Japan"},
		{"英国", "433150", "GBR", "United Kingdom"},
	})
	r,dir := testRun(t, d)

	require.NoError(t, r.bubbles(context.Background()))

	for _,f := range []string{"bubbles.pdf", "bubbles.geojson"} {
		info,err := os.Stat(filepath.Join(dir, f))
		require.NoError(t, err, f)
		assert.NotZero(t, info.Size(), f)
	}
}

func TestBubblesNothingPlaced(t *testing.T) {
	d := testDataset(t, [][]string{
		{"国家", "华人人口", "代码", "英文名"},
		{"美国", "5025817", "ZZA", "Atlantis"},
		{"日本", "922000", "ZZB", "Lemuria"},
		{"英国", "433150", "ZZC", "Mu"},
	})
	r,dir := testRun(t, d)

	require.NoError(t, r.bubbles(context.Background()))

	_,err := os.Stat(filepath.Join(dir, "bubbles.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunReportFilters(t *testing.T) {
	d := testDataset(t, [][]string{{"国家", "华人人口", "代码", "英文名"}, {"美国", "1", "USA", "United States"}})
	r,_ := testRun(t, d)
	r.data.populations = nil
	r.carrier = "中国东方航空"

	rep,err := r.runReport(context.Background(), "carriercodes")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"MU", "1"}}, rep.RowsText)
}
