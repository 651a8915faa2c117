package analysis

import(
	"fmt"

	fq "github.com/skypies/flightquota"
)

// {{{ notes

/* Weekly quota per destination country, over the passenger-cargo-mixed flights.

 Usually a record names one country, but there are entries like "英国-德国"; the
 record's whole quota is added to *both* countries (it is not divided between them),
 and added once to the grand total. So per-country totals can sum to more than the
 grand total, and the edge weights can sum to more than one. That is how the
 source data has always been read; don't 'fix' it here.

 */

// }}}

type CountryQuota struct {
	Countries  []string        // in first-seen order; never contains a composite
	Totals     map[string]int  // country -> summed weekly quota
	GrandTotal int             // each included record counted once
	Records    int             // how many records were included
}

type WeightedEdge struct {
	From, To string
	Weight   float64
}

func (e WeightedEdge)String() string {
	return fmt.Sprintf("%s-%s:%.4f", e.From, e.To, e.Weight)
}

// {{{ AggregateCountryQuota

func AggregateCountryQuota(records []fq.FlightRecord) (CountryQuota, error) {
	cq := CountryQuota{Totals: map[string]int{}}

	for i,r := range records {
		if !r.IsPassengerCargoMixed() { continue }

		countries,err := r.Countries()
		if err != nil {
			return CountryQuota{}, fmt.Errorf("record %d (%s): %w", i, r, err)
		}

		for _,c := range countries {
			if _,exists := cq.Totals[c]; !exists {
				cq.Countries = append(cq.Countries, c)
			}
			cq.Totals[c] += r.WeeklyQuota
		}
		cq.GrandTotal += r.WeeklyQuota
		cq.Records++
	}

	return cq, nil
}

// }}}
// {{{ cq.EdgeWeights

// EdgeWeights links the home country to every destination, weighted by its share of
// the grand total, rounded to four decimal places.
func (cq CountryQuota)EdgeWeights(home string) []WeightedEdge {
	out := []WeightedEdge{}
	if cq.GrandTotal <= 0 { return out }

	for _,c := range cq.Countries {
		w := float64(cq.Totals[c]) / float64(cq.GrandTotal)
		out = append(out, WeightedEdge{From:home, To:c, Weight:roundTo(w, 4)})
	}
	return out
}

// }}}

func (cq CountryQuota)String() string {
	str := fmt.Sprintf("--- country quota (%d countries, %d records, grand total %d) ---\n",
		len(cq.Countries), cq.Records, cq.GrandTotal)
	for _,c := range cq.Countries {
		str += fmt.Sprintf("  %-12s %5d\n", c, cq.Totals[c])
	}
	return str
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
