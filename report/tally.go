package report

import(
	"fmt"

	fq "github.com/skypies/flightquota"
	"github.com/skypies/flightquota/analysis"
)

func init() {
	HandleReport("carriers", tallyReporter(fq.ColCarrier), "Number of records per carrier")
	SummarizeReport("carriers", tallySummarizer(fq.ColCarrier))

	HandleReport("carriercodes", tallyReporter(fq.ColCarrierCode), "Number of records per carrier code")
	SummarizeReport("carriercodes", tallySummarizer(fq.ColCarrierCode))

	HandleReport("flags", tallyReporter(fq.ColFlag), "Number of records per passenger/cargo flag")
	SummarizeReport("flags", tallySummarizer(fq.ColFlag))
}

// Tally returns the report's running tally, creating it if need be.
func (r *Report)Tally() *analysis.Tally {
	if t,ok := r.Blobs["tally"].(*analysis.Tally); ok { return t }
	t := analysis.NewTally()
	r.Blobs["tally"] = t
	return t
}

func tallyReporter(col string) ReportFunc {
	return func(r *Report, rec fq.FlightRecord) (RecordOutcome, error) {
		val,err := rec.Field(col)
		if err != nil { return Undefined, err }
		r.Tally().Add(val)
		return Accepted, nil
	}
}

func tallySummarizer(col string) SummarizeFunc {
	return func(r *Report) error {
		t := r.Tally()
		r.SetHeaders([]string{col, "数量"})
		for _,bin := range t.Bins() {
			r.AddRow([]string{bin.Label, fmt.Sprintf("%d", bin.Count)})
		}
		r.I["[D] distinct "+col] = t.Len()
		r.I["[D] total"] = t.Total()
		return nil
	}
}
