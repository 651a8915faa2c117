// flightstats reads the flight quota workbook and writes the charts and reports.
package main

// go run ./cmd/flightstats -config=config.yaml -cmd=all -out=out

import(
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	fq "github.com/skypies/flightquota"
	"github.com/skypies/flightquota/config"
	"github.com/skypies/flightquota/publish"
	"github.com/skypies/flightquota/report"
	"github.com/skypies/flightquota/sheet"
)

var(
	fConfig  string
	fCmd     string
	fRep     string
	fOut     string
	fPublish bool
	fCarrier string
	fMixed   bool
)
func init() {
	flag.StringVar(&fConfig, "config", "config.yaml", "YAML config file (env vars override it)")
	flag.StringVar(&fCmd, "cmd", "all", "what to do: {bars,graph,routes,bubbles,report,all}")
	flag.StringVar(&fRep, "rep", "quota", "which report, for -cmd=report: "+reportNames())
	flag.StringVar(&fOut, "out", "", "output dir, or gs://bucket/prefix (default from config)")
	flag.BoolVar(&fPublish, "publish", false, "push the quota report rows to BigQuery")
	flag.StringVar(&fCarrier, "carrier", "", "reports only see this carrier's records (公司)")
	flag.BoolVar(&fMixed, "mixedonly", false, "reports only see passenger-cargo-mixed records")
}

func reportNames() string {
	names := []string{}
	for _,e := range report.ListReports() { names = append(names, e.Name) }
	return "{" + strings.Join(names, ",") + "}"
}

// A run holds everything the commands share.
type run struct {
	cfg      *config.Config
	log      *zap.Logger
	sink     *publish.Sink
	records  []fq.FlightRecord
	data     *dataset // reference tables; loaded on first use

	carrier   string // report filters
	mixedOnly bool
}

func main() {
	flag.Parse()

	ctx,stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg,err := config.Load(fConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger,err := config.NewLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if fOut == "" { fOut = cfg.Output.Dest }
	sink,err := publish.NewSink(ctx, fOut)
	if err != nil { logger.Fatal("output", zap.Error(err)) }
	defer sink.Close()

	records,err := sheet.ReadFlightRecords(ctx, cfg.Input.Flights, cfg.Input.FlightsSheet)
	if err != nil { logger.Fatal("flight records", zap.Error(err)) }
	logger.Info("flight records loaded", zap.String("path", cfg.Input.Flights),
		zap.Int("n", len(records)))

	r := &run{cfg:cfg, log:logger, sink:sink, records:records, carrier:fCarrier, mixedOnly:fMixed}

	steps := map[string]func(context.Context) error{
		"bars":    r.bars,
		"graph":   r.graph,
		"routes":  r.routes,
		"bubbles": r.bubbles,
		"report":  func(ctx context.Context) error { return r.report(ctx, fRep) },
	}

	switch fCmd {
	case "all":
		for _,name := range []string{"bars","graph","routes","bubbles"} {
			if err := steps[name](ctx); err != nil { logger.Fatal(name, zap.Error(err)) }
		}
		if err := r.report(ctx, "quota"); err != nil { logger.Fatal("report", zap.Error(err)) }
	default:
		step,exists := steps[fCmd]
		if !exists { logger.Fatal("command not known", zap.String("cmd", fCmd)) }
		if err := step(ctx); err != nil { logger.Fatal(fCmd, zap.Error(err)) }
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
