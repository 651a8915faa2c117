package report

import(
	"context"
	"fmt"

	"go.uber.org/zap"

	fq "github.com/skypies/flightquota"
	"github.com/skypies/flightquota/ref"
)

// ReportingContext holds the reference data reports may consult. Any of it may be
// missing; reports that need something check for it when set up.
type ReportingContext struct {
	context.Context
	Populations  *ref.Populations
	Continents   ref.Continents
	Locations    fq.CityLocations
	Zap          *zap.Logger
}

func (r *Report)checkReportingContext() error {
	if r.ReportingContext.Context == nil { r.ReportingContext.Context = context.Background() }
	if r.Zap == nil { r.Zap = zap.NewNop() }

	if r.Options.HomeCountry == "" {
		return fmt.Errorf("report '%s': no home country", r.Name)
	}
	if r.Name == "routes" && r.Options.FocusCountry == "" {
		return fmt.Errorf("report '%s': no focus country", r.Name)
	}
	return nil
}
