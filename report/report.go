// Package report runs named reports over a set of flight records. Each report sees
// every record once, then summarizes into a table of text rows plus a set of counters.
package report

import(
	"fmt"
	"sort"
	"time"

	"github.com/skypies/util/histogram"

	fq "github.com/skypies/flightquota"
)

type RecordOutcome int
const(
	RejectedByOptions RecordOutcome = iota
	RejectedByReport
	Accepted
	Undefined
)
type ReportFunc func(*Report, fq.FlightRecord)(RecordOutcome,error)
type SummarizeFunc func(*Report) error

type ReportLogLevel int
const(
	DEBUG = iota
	INFO
)

type Report struct {
	Name              string
	ReportingContext  // embedded
	Options           // embedded
	Func              ReportFunc
	SummarizeFunc     // embedded, but just to avoid a more confusing name

	// Private state a report accumulates between records and its summary
	Blobs map[string]interface{}

	// Output state
	RowsText  [][]string
	HeadersText []string

	I         map[string]int
	F         map[string]float64
	S         map[string]string
	H         histogram.Histogram // weekly quota of every accepted record

	Stats histogram.Set // internal performance counters
	Log string
}

func BlankReport() Report {
	return Report{
		I: map[string]int{},
		F: map[string]float64{},
		S: map[string]string{},
		RowsText: [][]string{},
		HeadersText: []string{},
		Blobs: map[string]interface{}{},
		H: histogram.Histogram{ValMin:0, ValMax:140, NumBuckets:14},
		Stats: histogram.NewSet(40000),  // maxval, in micros; 40ms == 40000us
	}
}

func (r *Report)Logger(level ReportLogLevel, s string) {
	if level < r.Options.ReportLogLevel { return }
	r.Log += s
}
func (r *Report)Infof(s string,args ...interface{}) { r.Logger(INFO, fmt.Sprintf(s,args...)) }
func (r *Report)Debugf(s string,args ...interface{}) { r.Logger(DEBUG, fmt.Sprintf(s,args...)) }
func (r *Report)Info(s string) { r.Infof("%s", s) }
func (r *Report)Debug(s string) { r.Debugf("%s", s) }

func (r *Report)SetHeaders(headers []string) {
	if len(r.HeadersText) == 0 { r.HeadersText = headers }
}
func (r *Report)AddRow(text []string) {
	r.RowsText = append(r.RowsText, text)
}

// {{{ r.PreProcess

// Ensure the record matches the options every report honors.
func (r *Report)PreProcess(rec fq.FlightRecord) bool {
	r.I["[A] PreProcessed"]++

	if r.Options.MixedOnly && !rec.IsPassengerCargoMixed() {
		r.I["[B] Eliminated: not "+fq.PassengerCargoMixed]++
		return false
	}
	if r.Options.Carrier != "" && rec.Carrier != r.Options.Carrier {
		r.I["[B] Eliminated: carrier not "+r.Options.Carrier]++
		return false
	}

	r.I["[B] Passed options"]++
	return true
}

// }}}
// {{{ r.Process

func (r *Report)Process(rec fq.FlightRecord) (RecordOutcome, error) {
	if !r.PreProcess(rec) { return RejectedByOptions,nil }

	tStart := time.Now()
	outcome,err := r.Func(r, rec)
	r.Stats.RecordValue("process", time.Since(tStart).Nanoseconds()/1000)
	if err != nil { return Undefined, err }

	if outcome == Accepted {
		r.I["[C] Accepted"]++
		r.H.Add(histogram.ScalarVal(rec.WeeklyQuota))
	} else {
		r.I["[C] Rejected by report"]++
	}
	return outcome, nil
}

// }}}
// {{{ r.Run

// Run feeds every record through the report, then summarizes.
func (r *Report)Run(records []fq.FlightRecord) error {
	if err := r.checkReportingContext(); err != nil { return err }
	r.Infof("**** Stage: %d records\n", len(records))
	for i,rec := range records {
		if _,err := r.Process(rec); err != nil {
			return fmt.Errorf("report %s, record %d (%s): %w", r.Name, i, rec, err)
		}
	}
	return r.FinishSummary()
}

// }}}

func (r *Report)FinishSummary() error {
	r.Info("**** Stage: all done\n")
	if r.SummarizeFunc != nil {
		tStart := time.Now()
		if err := r.SummarizeFunc(r); err != nil { return err }
		r.Stats.RecordValue("summarize", time.Since(tStart).Nanoseconds()/1000)
	}
	r.Infof("Stats (in micros):-\n%s", r.Stats)
	return nil
}

// {{{ r.MetadataTable

func (r *Report)MetadataTable() [][]string {
	all := map[string]string{}

	for k,v := range r.I { all[k] = fmt.Sprintf("%d", v) }
	for k,v := range r.F { all[k] = fmt.Sprintf("%.4f", v) }
	for k,v := range r.S { all[k] = v }

	if stats,valid := r.H.Stats(); valid {
		all["[Z] quota stats, N"] = fmt.Sprintf("%d", stats.N)
		all["[Z] quota stats, Mean"] = fmt.Sprintf("%.1f", stats.Mean)
		all["[Z] quota stats, Stddev"] = fmt.Sprintf("%.1f", stats.Stddev)
		all["[Z] quota stats, 50%ile"] = fmt.Sprintf("%v", stats.Percentile50)
		all["[Z] quota stats, 90%ile"] = fmt.Sprintf("%v", stats.Percentile90)
	}

	keys := []string{}
	for k,_ := range all { keys = append(keys, k) }
	sort.Strings(keys)

	out := [][]string{}
	for _,k := range keys {
		out = append(out, []string{k, all[k]})
	}

	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
