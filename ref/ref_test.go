package ref

// go test -v github.com/skypies/flightquota/ref

import(
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityAliases(t *testing.T) {
	ca,err := NewCityAliases()
	require.NoError(t, err)

	assert.Len(t, ca.Map, 60)
	assert.Equal(t, "San Francisco", ca.Query("旧金山"))
	assert.Equal(t, "Auckland-ish", ca.Query("Auckland-ish")) // pass-through

	a,ok := ca.Get("北京首都")
	require.True(t, ok)
	assert.Equal(t, "Beijing Capital", a.Query)
	assert.InDelta(t, 40.08, a.Pos.Lat, 0.01)

	pos := ca.Positions()
	assert.Contains(t, pos, "Tokyo Narita")
	assert.Contains(t, ca.String(), "60 entries")
}

func TestParseCityAliasesErrors(t *testing.T) {
	_,err := parseCityAliases("")
	assert.Error(t, err)

	_,err = parseCityAliases("name,query,lat,long\n福州,Fuzhou,north,east\n")
	assert.Error(t, err)
}

var populationRows = [][]string{
	{"国家", "华人人口", "代码", "英文名"},
	{"美国", "5025817", "USA", "United States  "},
	{"日本", "922,000", "JPN", "Japan"},
	{"英国", "433150", "GBR", "United Kingdom"},
	{"坏国", "many", "XXX", "Badland"},
}

func TestPopulations(t *testing.T) {
	p,err := NewPopulations(populationRows)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Len())

	us,err := p.Lookup("美国")
	require.NoError(t, err)
	assert.Equal(t, 5025817.0, us.Count)
	assert.Equal(t, "USA", us.ISOCode)
	assert.Equal(t, "United States", us.EnglishName)

	jp,err := p.Lookup("日本")
	require.NoError(t, err)
	assert.Equal(t, 922000.0, jp.Count)

	_,err = p.Lookup("火星")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCountry))

	_,err = p.Lookup("坏国")
	assert.Error(t, err)

	counts,err := p.Counts([]string{"美国", "英国"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"美国": 5025817, "英国": 433150}, counts)

	_,err = p.Counts([]string{"美国", "火星"})
	assert.True(t, errors.Is(err, ErrUnknownCountry))
}

func TestNewPopulationsMissingColumn(t *testing.T) {
	_,err := NewPopulations([][]string{{"国家", "华人人口"}, {"美国", "1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "代码")

	_,err = NewPopulations([][]string{{"国家", "华人人口", "代码", "英文名"}})
	assert.Error(t, err)
}

func TestReadContinents(t *testing.T) {
	csv := "country,continent,code\n" +
		"United States,North America,USA\n" +
		"Japan,Asia,JPN\n" +
		"United States,Oceania,USA\n" +
		"Germany,Europe,DEU\n"

	c,err := ReadContinents(strings.NewReader(csv))
	require.NoError(t, err)

	cont,known := c.Lookup("United States")
	assert.True(t, known)
	assert.Equal(t, "North America", cont) // first row wins

	cont,known = c.Lookup("Germany ")
	assert.True(t, known)
	assert.Equal(t, "Europe", cont)

	cont,known = c.Lookup("Laos")
	assert.False(t, known)
	assert.Equal(t, DefaultContinent, cont)
}

func TestReadContinentsMissingColumns(t *testing.T) {
	_,err := ReadContinents(strings.NewReader("name,region\nJapan,Asia\n"))
	assert.Error(t, err)
}

func TestCountryPositions(t *testing.T) {
	cp,err := NewCountryPositions()
	require.NoError(t, err)
	assert.Len(t, cp.ByName, 90)
	assert.Len(t, cp.ByISO, 90)

	us,ok := cp.Lookup("United States ", "")
	require.True(t, ok)
	assert.Equal(t, "USA", us.ISOCode)
	assert.InDelta(t, -98.6, us.Pos.Long, 0.1)

	gb,ok := cp.Lookup("Great Britain", "gbr") // name unknown, ISO code known
	require.True(t, ok)
	assert.Equal(t, "United Kingdom", gb.Name)

	_,ok = cp.Lookup("Atlantis", "ATL")
	assert.False(t, ok)

	pos := cp.Positions()
	assert.Contains(t, pos, "Japan")
	assert.Contains(t, pos, "United Kingdom")
}

func TestParseCountryPositionsErrors(t *testing.T) {
	_,err := parseCountryPositions("iso,name,lat,long\n")
	assert.Error(t, err)

	_,err = parseCountryPositions("iso,name,lat,long\nJPN,Japan,north,east\n")
	assert.Error(t, err)
}
