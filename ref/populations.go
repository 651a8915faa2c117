package ref

import(
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column headers of the diaspora population sheet (海外华人人口.xlsx)
const(
	ColPopCountry     = "国家"
	ColPopCount       = "华人人口"
	ColPopISOCode     = "代码"
	ColPopEnglishName = "英文名"
)

var ErrUnknownCountry = errors.New("country not in reference table")

type Population struct {
	Country      string
	Count        float64
	ISOCode      string
	EnglishName  string
}

// Populations is the diaspora population table, held as a dataframe.
type Populations struct {
	df dataframe.DataFrame
}

// {{{ NewPopulations

// NewPopulations builds the table from rows of strings, header first (as
// sheet.ReadTable returns them).
func NewPopulations(records [][]string) (*Populations, error) {
	if len(records) < 2 { return nil, fmt.Errorf("population table: no data rows") }

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil { return nil, fmt.Errorf("population table: %w", df.Err) }

	have := map[string]bool{}
	for _,n := range df.Names() { have[n] = true }
	for _,col := range []string{ColPopCountry, ColPopCount, ColPopISOCode, ColPopEnglishName} {
		if !have[col] { return nil, fmt.Errorf("population table: missing column '%s'", col) }
	}

	return &Populations{df:df}, nil
}

// }}}

func (p *Populations)Len() int { return p.df.Nrow() }

// {{{ p.Lookup

// Lookup finds the first row for the country.
func (p *Populations)Lookup(country string) (Population, error) {
	sub := p.df.Filter(dataframe.F{Colname:ColPopCountry, Comparator:series.Eq, Comparando:country})
	if sub.Err != nil { return Population{}, sub.Err }
	if sub.Nrow() == 0 {
		return Population{}, fmt.Errorf("%w: '%s'", ErrUnknownCountry, country)
	}

	countStr := strings.ReplaceAll(sub.Col(ColPopCount).Elem(0).String(), ",", "")
	count,err := strconv.ParseFloat(strings.TrimSpace(countStr), 64)
	if err != nil {
		return Population{}, fmt.Errorf("population of '%s': '%s' is not a number", country, countStr)
	}

	return Population{
		Country:     country,
		Count:       count,
		ISOCode:     strings.TrimSpace(sub.Col(ColPopISOCode).Elem(0).String()),
		EnglishName: strings.TrimRight(sub.Col(ColPopEnglishName).Elem(0).String(), " "),
	}, nil
}

// }}}
// {{{ p.Counts

// Counts looks up the population of every country, failing on the first unknown one.
func (p *Populations)Counts(countries []string) (map[string]float64, error) {
	out := map[string]float64{}
	for _,c := range countries {
		pop,err := p.Lookup(c)
		if err != nil { return nil, err }
		out[c] = pop.Count
	}
	return out, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
