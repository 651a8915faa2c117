package analysis

// go test -v github.com/skypies/flightquota/analysis

import(
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fq "github.com/skypies/flightquota"
)

func mixed(country string, quota int) fq.FlightRecord {
	return fq.FlightRecord{Flag:fq.PassengerCargoMixed, Country:country, Route:"北京首都-纽约肯尼迪",
		WeeklyQuota:quota}
}

// {{{ Tally

func TestTallyOrderAndCounts(t *testing.T) {
	labels := []string{"CA", "MU", "CA", "CZ", "MU", "CA"}
	tally := TallyLabels(labels)

	assert.Equal(t, []Bin{{"CA", 3}, {"MU", 2}, {"CZ", 1}}, tally.Bins())
	assert.Equal(t, 3, tally.Count("CA"))
	assert.Equal(t, 0, tally.Count("HU"))
	assert.Equal(t, len(labels), tally.Total())
	assert.Contains(t, tally.String(), "CZ")
}

func TestTallyEmpty(t *testing.T) {
	tally := TallyLabels(nil)
	assert.Equal(t, 0, tally.Len())
	assert.Equal(t, 0, tally.Total())
	assert.Empty(t, tally.Bins())
}

// Counts sum to the input length, and each distinct label appears exactly once.
func TestTallyProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := []string{"公司A", "公司B", "公司C", "公司D", "公司E"}

	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(200)
		labels := make([]string, n)
		distinct := map[string]bool{}
		for i := range labels {
			labels[i] = pool[rng.Intn(len(pool))]
			distinct[labels[i]] = true
		}

		tally := TallyLabels(labels)
		assert.Equal(t, n, tally.Total())
		assert.Equal(t, len(distinct), tally.Len())

		keys := map[string]int{}
		for _,b := range tally.Bins() { keys[b.Label]++ }
		for k,v := range keys {
			assert.Equal(t, 1, v, "label %s appears %d times", k, v)
			assert.True(t, distinct[k])
		}
	}
}

func TestTallyColumn(t *testing.T) {
	recs := []fq.FlightRecord{
		{Carrier:"中国国际航空", Flag:fq.PassengerCargoMixed},
		{Carrier:"中国货运航空", Flag:"全货机"},
		{Carrier:"中国国际航空", Flag:fq.PassengerCargoMixed},
	}
	tally,err := TallyColumn(recs, fq.ColFlag)
	require.NoError(t, err)
	assert.Equal(t, []Bin{{fq.PassengerCargoMixed, 2}, {"全货机", 1}}, tally.Bins())

	_,err = TallyColumn(recs, "机型")
	assert.Error(t, err)
}

// }}}
// {{{ CountryQuota

func TestAggregateCountryQuotaExample(t *testing.T) {
	recs := []fq.FlightRecord{ mixed("美国-日本", 10), mixed("美国", 5) }

	cq,err := AggregateCountryQuota(recs)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"美国":15, "日本":10}, cq.Totals)
	assert.Equal(t, 15, cq.GrandTotal)
	assert.Equal(t, []string{"美国", "日本"}, cq.Countries)
	assert.NotContains(t, cq.Totals, "美国-日本")

	edges := cq.EdgeWeights(fq.HomeCountry)
	require.Len(t, edges, 2)
	assert.Equal(t, WeightedEdge{fq.HomeCountry, "美国", 1.0}, edges[0])
	assert.Equal(t, fq.HomeCountry, edges[1].From)
	assert.Equal(t, "日本", edges[1].To)
	assert.InDelta(t, 0.6667, edges[1].Weight, 1e-9)
}

func TestAggregateCountryQuotaComposite(t *testing.T) {
	q := 9
	recs := []fq.FlightRecord{
		mixed("英国", 4),
		mixed("英国-德国", q),
		{Flag:"全货机", Country:"德国", WeeklyQuota:100}, // not counted
	}

	cq,err := AggregateCountryQuota(recs)
	require.NoError(t, err)
	assert.Equal(t, 4+q, cq.Totals["英国"])
	assert.Equal(t, q, cq.Totals["德国"])
	assert.Equal(t, 4+q, cq.GrandTotal) // q counted once
	assert.Equal(t, 2, cq.Records)
}

// A country named twice in one composite is still one destination: its quota counts once.
func TestAggregateCountryQuotaRepeatedCountry(t *testing.T) {
	cq,err := AggregateCountryQuota([]fq.FlightRecord{ mixed("美国-美国", 10), mixed("美国-日本-美国", 3) })
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"美国":13, "日本":3}, cq.Totals)
	assert.Equal(t, 13, cq.GrandTotal)
	assert.Equal(t, []string{"美国", "日本"}, cq.Countries)
}

func TestAggregateCountryQuotaMalformed(t *testing.T) {
	_,err := AggregateCountryQuota([]fq.FlightRecord{ mixed("美国-", 3) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, fq.ErrMalformedComposite))

	// Malformed, but not passenger-cargo-mixed, so never looked at
	_,err = AggregateCountryQuota([]fq.FlightRecord{ {Flag:"全货机", Country:"-"} })
	assert.NoError(t, err)
}

func TestEdgeWeightsSumToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := []string{"美国", "日本", "韩国", "英国", "德国", "法国", "泰国", "新加坡"}

	for trial := 0; trial < 50; trial++ {
		recs := []fq.FlightRecord{}
		for i := 0; i < 1+rng.Intn(40); i++ {
			recs = append(recs, mixed(pool[rng.Intn(len(pool))], 1+rng.Intn(30)))
		}

		cq,err := AggregateCountryQuota(recs)
		require.NoError(t, err)

		sum := 0.0
		edges := cq.EdgeWeights(fq.HomeCountry)
		for _,e := range edges { sum += e.Weight }
		// each weight is off by at most 0.00005
		assert.InDelta(t, 1.0, sum, 0.00005*float64(len(edges))+1e-9)
	}
}

func TestEdgeWeightsEmpty(t *testing.T) {
	cq,err := AggregateCountryQuota(nil)
	require.NoError(t, err)
	assert.Empty(t, cq.EdgeWeights(fq.HomeCountry))
	assert.Contains(t, cq.String(), "0 countries")
}

// }}}
// {{{ NodeWeight

func TestNodeWeight(t *testing.T) {
	w,err := NodeWeight(1, 10000)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w) // ln(1) == 0

	w,err = NodeWeight(5000, 10000)
	require.NoError(t, err)
	assert.Equal(t, 852.0, w) // ln(5000)*100 = 851.7

	for _,bad := range [][2]float64{{0,10}, {-1,10}, {1,0}} {
		_,err := NodeWeight(bad[0], bad[1])
		assert.True(t, errors.Is(err, ErrNonPositivePopulation), "%v", bad)
	}
}

func TestNodeWeightMonotonic(t *testing.T) {
	total := 1e7
	prev := -1e18
	for pop := 10.0; pop <= total; pop *= 1.7 {
		w,err := NodeWeight(pop, total)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, w, prev, "pop=%v", pop)
		prev = w
	}
}

func TestNodeWeights(t *testing.T) {
	pops := map[string]float64{"美国":3000, "日本":1000}
	nodes,err := NodeWeights([]string{"美国", "日本"}, pops)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "美国", nodes[0].Name)
	assert.Equal(t, roundTo(100*logOf(7500), 0), nodes[0].Weight)
	assert.Greater(t, nodes[0].Weight, nodes[1].Weight)

	_,err = NodeWeights([]string{"美国", "火星"}, pops)
	assert.Error(t, err)

	_,err = NodeWeights([]string{"美国"}, map[string]float64{"美国":0})
	assert.True(t, errors.Is(err, ErrNonPositivePopulation))
}

// }}}
// {{{ Routes

func TestSelectRoutes(t *testing.T) {
	recs := []fq.FlightRecord{
		{Flag:fq.PassengerCargoMixed, Country:"美国", Route:"福州-纽约肯尼迪"},
		{Flag:"全货机", Country:"美国", Route:"上海浦东-安克雷奇-芝加哥"},
		{Flag:fq.PassengerCargoMixed, Country:"日本-美国", Route:"上海浦东-东京成田-纽约肯尼迪"},
		{Flag:fq.PassengerCargoMixed, Country:"英国", Route:"北京首都-伦敦"},
	}

	rs,err := SelectRoutes(recs, "美国")
	require.NoError(t, err)
	assert.Len(t, rs.All, 3)
	assert.Equal(t, []string{"福州-纽约肯尼迪", "上海浦东-东京成田-纽约肯尼迪"}, rs.Selected)
	assert.Equal(t, []string{"福州", "纽约肯尼迪", "上海浦东", "安克雷奇", "芝加哥", "东京成田"}, rs.Cities)

	_,err = SelectRoutes([]fq.FlightRecord{{Country:"美国", Route:"福州-"}}, "美国")
	assert.Error(t, err)
}

func TestResolvePaths(t *testing.T) {
	locs := fq.CityLocations{
		"福州":    {Lat:26.07703, Long:119.283989},
		"纽约肯尼迪": {Lat:40.64123, Long:-73.777946},
		"上海浦东":  {Lat:31.146498, Long:121.808359},
	}

	paths,unresolved,err := ResolvePaths([]string{"福州-纽约肯尼迪", "上海浦东-安克雷奇-纽约肯尼迪"}, locs)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, "福州-纽约肯尼迪", paths[0].Route)
	assert.Len(t, paths[0].Points, 2)
	assert.InDelta(t, 12475, paths[0].DistKM(), 250)

	require.Len(t, unresolved, 1)
	assert.Contains(t, unresolved[0], "安克雷奇")
}

// }}}

func logOf(x float64) float64 { return math.Log(x) }
