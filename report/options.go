package report

// All reports share this same options struct. Some options apply to all reports, and
// some only make sense to one kind of report.

import(
	"fmt"

	fq "github.com/skypies/flightquota"
)

type Options struct {
	Name               string

	HomeCountry        string // the hub of the country graph
	FocusCountry       string // routes report: the destination of interest

	MixedOnly          bool   // only consider passenger-cargo-mixed records
	Carrier            string // only consider this carrier

	ReportLogLevel
}

func DefaultOptions(name string) Options {
	return Options{
		Name: name,
		HomeCountry: fq.HomeCountry,
		FocusCountry: "美国",
		ReportLogLevel: INFO,
	}
}

func (o Options)String() string {
	return fmt.Sprintf("rep=%s home=%s focus=%s mixedonly=%v carrier=%q", o.Name,
		o.HomeCountry, o.FocusCountry, o.MixedOnly, o.Carrier)
}
