package main

import(
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	fq "github.com/skypies/flightquota"
	"github.com/skypies/flightquota/analysis"
	"github.com/skypies/flightquota/geocode"
	"github.com/skypies/flightquota/publish"
	"github.com/skypies/flightquota/ref"
	"github.com/skypies/flightquota/render"
	"github.com/skypies/flightquota/report"
)

var barColumns = []struct{ Col, File string }{
	{fq.ColCarrier,     "bars-carrier.png"},
	{fq.ColCarrierCode, "bars-carriercode.png"},
	{fq.ColFlag,        "bars-flag.png"},
}

func (r *run)font() *render.Font {
	if r.cfg.Render.Font == "" { return nil }
	f,err := render.LoadFont(r.cfg.Render.Font)
	if err != nil {
		r.log.Warn("font unavailable, labels may not render", zap.Error(err))
		return nil
	}
	return f
}

// {{{ r.bars

func (r *run)bars(ctx context.Context) error {
	r.font().UseInPlots()

	for _,bc := range barColumns {
		t,err := analysis.TallyColumn(r.records, bc.Col)
		if err != nil { return err }
		p,err := render.BarChart(t, bc.Col)
		if err != nil { return err }

		err = r.sink.WriteFunc(ctx, bc.File, func(w io.Writer) error { return render.WritePNG(p, w) })
		if err != nil { return err }
		r.log.Info("bar chart written", zap.String("column", bc.Col), zap.Int("bars", t.Len()),
			zap.String("uri", r.sink.URI(bc.File)))
	}
	return nil
}

// }}}
// {{{ r.graph

func (r *run)graph(ctx context.Context) error {
	d,err := r.dataset(ctx)
	if err != nil { return err }

	cq,err := analysis.AggregateCountryQuota(r.records)
	if err != nil { return err }
	home := r.cfg.Analysis.HomeCountry
	edges := cq.EdgeWeights(home)

	var nodes []analysis.WeightedNode
	if d.populations != nil {
		pops,err := d.populations.Counts(cq.Countries)
		if err != nil { return err }
		if nodes,err = analysis.NodeWeights(cq.Countries, pops); err != nil { return err }
	} else {
		r.log.Warn("no population table; drawing uniform node sizes")
	}

	r.font().UseInPlots()
	p,err := render.NetworkGraph(home, edges, nodes)
	if err != nil { return err }

	err = r.sink.WriteFunc(ctx, "graph.png", func(w io.Writer) error { return render.WritePNG(p, w) })
	if err != nil { return err }
	r.log.Info("graph written", zap.Int("countries", len(cq.Countries)),
		zap.Int("grand_total", cq.GrandTotal), zap.String("uri", r.sink.URI("graph.png")))
	return nil
}

// }}}
// {{{ r.routes

func (r *run)routes(ctx context.Context) error {
	d,err := r.dataset(ctx)
	if err != nil { return err }

	focus := r.cfg.Analysis.FocusCountry
	sel,err := analysis.SelectRoutes(r.records, focus)
	if err != nil { return err }
	r.log.Info("routes selected", zap.String("country", focus), zap.Int("all", len(sel.All)),
		zap.Int("selected", len(sel.Selected)), zap.Int("cities", len(sel.Cities)))

	g,done,err := r.geocoder(ctx, d)
	if err != nil { return err }
	defer done()

	results := geocode.Resolve(ctx, g, sel.Cities, d.aliases, r.log)
	if failed := results.Failures(); len(failed) > 0 {
		r.log.Warn("cities not geocoded", zap.Strings("names", failed))
	}

	paths,unresolved,err := analysis.ResolvePaths(sel.Selected, results.Locations())
	if err != nil { return err }
	if len(unresolved) > 0 {
		r.log.Warn("routes skipped", zap.Strings("routes", unresolved))
	}

	title := fmt.Sprintf("%s-%s %s航线", r.cfg.Analysis.HomeCountry, focus, fq.PassengerCargoMixed)
	font := r.font()
	if err := r.sink.WriteFunc(ctx, "routes.pdf", func(w io.Writer) error {
		return render.WriteFlightPaths(w, title, paths, font)
	}); err != nil {
		return err
	}

	if err := r.sink.WriteFunc(ctx, "routes.geojson", func(w io.Writer) error {
		b,err := render.GeoJSON(paths, nil).MarshalJSON()
		if err != nil { return err }
		_,err = w.Write(b)
		return err
	}); err != nil {
		return err
	}

	r.log.Info("routes written", zap.Int("drawn", len(paths)), zap.Int("skipped", len(unresolved)),
		zap.String("uri", r.sink.URI("routes.pdf")))
	return nil
}

// }}}
// {{{ r.bubbles

func (r *run)bubbles(ctx context.Context) error {
	d,err := r.dataset(ctx)
	if err != nil { return err }
	if err := r.requirePopulations(d); err != nil { return err }

	rep,err := r.runReport(ctx, "quota")
	if err != nil { return err }
	rows := rep.CountryRows()

	g,done,err := r.geocoder(ctx, d)
	if err != nil { return err }
	defer done()

	names := []string{}
	for _,row := range rows { names = append(names, row.EnglishName) }
	locs := geocode.Resolve(ctx, g, names, nil, r.log).Locations()

	bubbles := placeBubbles(rows, locs, d.countries, r.log)
	if len(bubbles) == 0 {
		r.log.Warn("no country could be placed; bubble map skipped", zap.Int("countries", len(rows)))
		return nil
	}

	font := r.font()
	if err := r.sink.WriteFunc(ctx, "bubbles.pdf", func(w io.Writer) error {
		return render.WriteBubbleMap(w, "各国航班周班次", bubbles, font)
	}); err != nil {
		return err
	}

	if err := r.sink.WriteFunc(ctx, "bubbles.geojson", func(w io.Writer) error {
		b,err := render.GeoJSON(nil, bubbles).MarshalJSON()
		if err != nil { return err }
		_,err = w.Write(b)
		return err
	}); err != nil {
		return err
	}

	r.log.Info("bubbles written", zap.Int("placed", len(bubbles)), zap.Int("countries", len(rows)),
		zap.String("uri", r.sink.URI("bubbles.pdf")))
	return nil
}

// placeBubbles puts each country at its geocoded position, or failing that at its
// position in the embedded table.
func placeBubbles(rows []report.CountryRow, locs fq.CityLocations, cp *ref.CountryPositions, log *zap.Logger) []render.Bubble {
	bubbles := []render.Bubble{}
	for _,row := range rows {
		loc,exists := locs[row.EnglishName]
		if !exists && cp != nil {
			if c,ok := cp.Lookup(row.EnglishName, row.ISOCode); ok {
				loc,exists = c.Pos, true
			}
		}
		if !exists {
			log.Warn("country not placed", zap.String("country", row.Country),
				zap.String("english", row.EnglishName))
			continue
		}
		bubbles = append(bubbles, render.Bubble{
			Country: row.Country,
			Label: row.ISOCode,
			Continent: row.Continent,
			Quota: row.Quota,
			Location: loc,
		})
	}
	return bubbles
}

// }}}
// {{{ r.report, r.runReport

func (r *run)runReport(ctx context.Context, name string) (report.Report, error) {
	d,err := r.dataset(ctx)
	if err != nil { return report.Report{}, err }

	opt := report.DefaultOptions(name)
	opt.HomeCountry = r.cfg.Analysis.HomeCountry
	opt.FocusCountry = r.cfg.Analysis.FocusCountry
	opt.Carrier = r.carrier
	opt.MixedOnly = r.mixedOnly

	rc := report.ReportingContext{
		Context: ctx,
		Populations: d.populations,
		Continents: d.continents,
		Zap: r.log,
	}

	if name == "routes" {
		g,done,err := r.geocoder(ctx, d)
		if err != nil { return report.Report{}, err }
		defer done()
		sel,err := analysis.SelectRoutes(r.records, opt.FocusCountry)
		if err != nil { return report.Report{}, err }
		rc.Locations = geocode.Resolve(ctx, g, sel.Cities, d.aliases, r.log).Locations()
	}

	rep,err := report.SetupReport(opt, rc)
	if err != nil { return report.Report{}, err }
	if err := rep.Run(r.records); err != nil { return report.Report{}, err }

	r.log.Debug("report log", zap.String("report", name), zap.String("log", rep.Log))
	return rep, nil
}

func (r *run)report(ctx context.Context, name string) error {
	rep,err := r.runReport(ctx, name)
	if err != nil { return err }

	if err := rep.OutputAsText(os.Stdout); err != nil { return err }
	for _,kv := range rep.MetadataTable() {
		fmt.Printf("  %-40s %s\n", kv[0], kv[1])
	}

	file := "report-"+name+".csv"
	if err := r.sink.WriteFunc(ctx, file, rep.OutputAsCSV); err != nil { return err }
	r.log.Info("report written", zap.String("report", name), zap.Int("rows", len(rep.RowsText)),
		zap.String("uri", r.sink.URI(file)))

	if fPublish && name == "quota" {
		return r.publish(ctx, rep)
	}
	return nil
}

// }}}
// {{{ r.publish

func (r *run)publish(ctx context.Context, rep report.Report) error {
	bqc := r.cfg.BigQuery
	if bqc.Project == "" { return fmt.Errorf("publish: bigquery.project not set") }

	runID := uuid.NewString()
	rows := publish.NewCountryQuotaRows(runID, time.Now(), rep.CountryRows())

	bq,err := publish.NewBigQuery(ctx, bqc.Project, bqc.Dataset, bqc.Table, r.log)
	if err != nil { return err }
	defer bq.Close()

	if bqc.Mode == "stream" {
		return bq.Put(ctx, rows)
	}

	// load mode: the rows go via a file in Cloud Storage
	if !r.sink.IsGCS() { return fmt.Errorf("publish: load mode needs a gs:// output") }
	file := "quota-"+runID+".jsonl"
	if err := r.sink.WriteFunc(ctx, file, func(w io.Writer) error {
		return publish.WriteJSONLines(w, rows)
	}); err != nil {
		return err
	}
	return bq.Load(ctx, r.sink.URI(file))
}

// }}}
