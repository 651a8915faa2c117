package analysis

import(
	"errors"
	"fmt"
	"math"
)

var ErrNonPositivePopulation = errors.New("population must be positive")

type WeightedNode struct {
	Name   string
	Weight float64
}

// NodeWeight is the display size of a country node: a log-scale transform of its share
// of the total population, round(ln(pop/total * 10000) * 100). It is monotonic in pop.
func NodeWeight(pop, total float64) (float64, error) {
	if pop <= 0 || total <= 0 {
		return 0, fmt.Errorf("%w (pop=%v, total=%v)", ErrNonPositivePopulation, pop, total)
	}
	return roundTo(math.Log(pop/total*10000)*100, 0), nil
}

// NodeWeights sizes every country against the total population of the given countries.
func NodeWeights(countries []string, pops map[string]float64) ([]WeightedNode, error) {
	total := 0.0
	for _,c := range countries {
		pop,exists := pops[c]
		if !exists { return nil, fmt.Errorf("no population for '%s'", c) }
		total += pop
	}

	out := []WeightedNode{}
	for _,c := range countries {
		w,err := NodeWeight(pops[c], total)
		if err != nil { return nil, fmt.Errorf("%s: %w", c, err) }
		out = append(out, WeightedNode{Name:c, Weight:w})
	}
	return out, nil
}
