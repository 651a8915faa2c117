package report

import(
	"fmt"

	fq "github.com/skypies/flightquota"
	"github.com/skypies/flightquota/analysis"
)

func init() {
	HandleReport("routes", RoutesReporter, "Routes serving the focus country, with lengths")
	SummarizeReport("routes", RoutesSummarizer)
}

var RoutesReportHeaders = []string{"航线", "客货标识", "城市数", "距离(km)"}

func RoutesReporter(r *Report, rec fq.FlightRecord) (RecordOutcome, error) {
	if !rec.HasCountry(r.Options.FocusCountry) { return RejectedByReport, nil }
	r.keep(rec)
	return Accepted, nil
}

func RoutesSummarizer(r *Report) error {
	r.SetHeaders(RoutesReportHeaders)

	km := 0.0
	for _,rec := range r.records() {
		cities,err := rec.Cities()
		if err != nil { return fmt.Errorf("%s: %w", rec, err) }

		dist := ""
		if r.Locations != nil {
			paths,unresolved,err := analysis.ResolvePaths([]string{rec.Route}, r.Locations)
			if err != nil { return err }
			if len(unresolved) > 0 {
				r.I["[D] routes with unresolved cities"]++
			} else {
				dist = fmt.Sprintf("%.0f", paths[0].DistKM())
				km += paths[0].DistKM()
			}
		}

		r.AddRow([]string{rec.Route, rec.Flag, fmt.Sprintf("%d", len(cities)), dist})
		if rec.IsPassengerCargoMixed() { r.I["[D] "+fq.PassengerCargoMixed+" routes"]++ }
	}

	r.I["[D] routes"] = len(r.RowsText)
	r.F["[D] total km"] = km
	return nil
}
