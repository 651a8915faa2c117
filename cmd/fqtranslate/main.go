// fqtranslate translates each distinct country string in the flight quota workbook,
// and prints the resulting dictionary.
package main

// go run ./cmd/fqtranslate -config=config.yaml -target=en -format=json

import(
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/skypies/flightquota/config"
	"github.com/skypies/flightquota/publish"
	"github.com/skypies/flightquota/sheet"
	"github.com/skypies/flightquota/translate"
)

var(
	fConfig string
	fTarget string
	fFormat string
	fOut    string
)
func init() {
	flag.StringVar(&fConfig, "config", "config.yaml", "YAML config file (env vars override it)")
	flag.StringVar(&fTarget, "target", "", "target language (default from config)")
	flag.StringVar(&fFormat, "format", "csv", "output format: {csv,json}")
	flag.StringVar(&fOut, "out", "", "also write translations.<format> to this dir, or gs://bucket/prefix")
	flag.Parse()
}

func main() {
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

	if fTarget == "" { fTarget = cfg.Translate.Target }

	var write func(translate.Dictionary, io.Writer) error
	switch fFormat {
	case "csv":  write = translate.Dictionary.WriteCSV
	case "json": write = translate.Dictionary.WriteJSON
	default:     logger.Fatal("format not known", zap.String("format", fFormat))
	}

	if cfg.Translate.APIKey == "" { logger.Fatal("translate.api_key (FQ_TRANSLATE_API_KEY) not set") }

	records,err := sheet.ReadFlightRecords(ctx, cfg.Input.Flights, cfg.Input.FlightsSheet)
	if err != nil { logger.Fatal("flight records", zap.Error(err)) }

	tr,err := translate.NewGoogle(ctx, cfg.Translate.APIKey)
	if err != nil { logger.Fatal("translator", zap.Error(err)) }
	tr.Source = cfg.Translate.Source

	dict,err := translate.BuildDictionary(ctx, tr, records, fTarget, logger)
	if err != nil { logger.Fatal("translate", zap.Error(err)) }

	if err := write(dict, os.Stdout); err != nil { logger.Fatal("output", zap.Error(err)) }

	if fOut != "" {
		sink,err := publish.NewSink(ctx, fOut)
		if err != nil { logger.Fatal("output", zap.Error(err)) }
		defer sink.Close()

		file := "translations."+fFormat
		if err := sink.WriteFunc(ctx, file, func(w io.Writer) error { return write(dict, w) }); err != nil {
			logger.Fatal("output", zap.Error(err))
		}
		logger.Info("translations written", zap.Int("n", dict.Len()), zap.String("uri", sink.URI(file)))
	}
}
