package report

import(
	"fmt"

	"go.uber.org/zap"

	fq "github.com/skypies/flightquota"
	"github.com/skypies/flightquota/analysis"
	"github.com/skypies/flightquota/ref"
)

func init() {
	HandleReport("quota", QuotaReporter, "Weekly quota, edge weight and node weight per country")
	SummarizeReport("quota", QuotaSummarizer)
}

// CountryRow is one line of the quota report.
type CountryRow struct {
	Country        string
	Quota          int
	EdgeWeight     float64
	NodeWeight     float64
	HasNodeWeight  bool
	ISOCode        string
	EnglishName    string
	Continent      string
}

var QuotaReportHeaders = []string{"国家", "周班次", "边权重", "节点权重", "代码", "英文名", "洲"}

func (cr CountryRow)Strings() []string {
	nw := ""
	if cr.HasNodeWeight { nw = fmt.Sprintf("%.0f", cr.NodeWeight) }
	return []string{
		cr.Country, fmt.Sprintf("%d", cr.Quota), fmt.Sprintf("%.4f", cr.EdgeWeight), nw,
		cr.ISOCode, cr.EnglishName, cr.Continent,
	}
}

func (r *Report)records() []fq.FlightRecord {
	recs,_ := r.Blobs["records"].([]fq.FlightRecord)
	return recs
}
func (r *Report)keep(rec fq.FlightRecord) {
	r.Blobs["records"] = append(r.records(), rec)
}

// CountryRows is the summarized output of a quota report; empty until it has run.
func (r *Report)CountryRows() []CountryRow {
	rows,_ := r.Blobs["countries"].([]CountryRow)
	return rows
}

// CountryQuota is the aggregation behind the quota report.
func (r *Report)CountryQuota() (analysis.CountryQuota, bool) {
	cq,ok := r.Blobs["quota"].(analysis.CountryQuota)
	return cq, ok
}

func QuotaReporter(r *Report, rec fq.FlightRecord) (RecordOutcome, error) {
	if !rec.IsPassengerCargoMixed() { return RejectedByReport, nil }
	r.keep(rec)
	return Accepted, nil
}

// {{{ QuotaSummarizer

func QuotaSummarizer(r *Report) error {
	cq,err := analysis.AggregateCountryQuota(r.records())
	if err != nil { return err }
	r.Blobs["quota"] = cq

	rows := []CountryRow{}
	for _,e := range cq.EdgeWeights(r.Options.HomeCountry) {
		rows = append(rows, CountryRow{Country:e.To, Quota:cq.Totals[e.To], EdgeWeight:e.Weight})
	}

	if r.Populations != nil && len(rows) > 0 {
		pops,err := r.Populations.Counts(cq.Countries)
		if err != nil { return err }
		nodes,err := analysis.NodeWeights(cq.Countries, pops)
		if err != nil { return err }

		for i := range rows {
			rows[i].NodeWeight, rows[i].HasNodeWeight = nodes[i].Weight, true

			pop,err := r.Populations.Lookup(rows[i].Country)
			if err != nil { return err }
			rows[i].ISOCode, rows[i].EnglishName = pop.ISOCode, pop.EnglishName

			if r.Continents != nil {
				if cont,exists := r.Continents.Lookup(pop.EnglishName); exists {
					rows[i].Continent = cont
				} else {
					rows[i].Continent = ref.DefaultContinent
					r.I["[D] continent defaulted to "+ref.DefaultContinent]++
					r.Infof("no continent for '%s' (%s)\n", pop.EnglishName, rows[i].Country)
					r.Zap.Warn("continent defaulted", zap.String("country", rows[i].Country),
						zap.String("english", pop.EnglishName))
				}
			}
		}
	}

	r.SetHeaders(QuotaReportHeaders)
	sum := 0.0
	for _,row := range rows {
		r.AddRow(row.Strings())
		sum += row.EdgeWeight
	}
	r.Blobs["countries"] = rows

	r.I["[D] grand total"] = cq.GrandTotal
	r.I["[D] countries"] = len(cq.Countries)
	r.F["[D] edge weight sum"] = sum
	return nil
}

// }}}
