package sheet

import(
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	fq "github.com/skypies/flightquota"
)

// {{{ row.ToFlightRecord

func (r Row)ToFlightRecord() (fq.FlightRecord, error) {
	rec := fq.FlightRecord{
		Carrier:     strings.TrimSpace(r[fq.ColCarrier]),
		CarrierCode: strings.TrimSpace(r[fq.ColCarrierCode]),
		Flag:        strings.TrimSpace(r[fq.ColFlag]),
		Country:     strings.TrimSpace(r[fq.ColCountry]),
		Route:       strings.TrimSpace(r[fq.ColRoute]),
	}

	if !r.Has(fq.ColWeeklyQuota) { return rec, fmt.Errorf("%s: blank", fq.ColWeeklyQuota) }
	q,err := parseQuota(r[fq.ColWeeklyQuota])
	if err != nil { return rec, err }
	rec.WeeklyQuota = q

	return rec, nil
}

// Weekly quotas are counts, but a workbook may hand them over as "7" or "7.0"
func parseQuota(s string) (int, error) {
	s = strings.TrimSpace(s)

	if n,err := strconv.Atoi(s); err == nil {
		if n < 0 { return 0, fmt.Errorf("%s: negative value %d", fq.ColWeeklyQuota, n) }
		return n, nil
	}

	f,err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: '%s' is not a number", fq.ColWeeklyQuota, s)
	} else if f < 0 || f != math.Trunc(f) {
		return 0, fmt.Errorf("%s: '%s' is not a whole, non-negative number", fq.ColWeeklyQuota, s)
	}

	return int(f), nil
}

// }}}

// {{{ ReadFrom

// ReadFrom parses every flight record in the workbook. The sheet must have all of
// fq.RequiredColumns; a bad row fails the whole load, naming the row.
func ReadFrom(name string, rdr io.Reader, sheetName string) ([]fq.FlightRecord, error) {
	f,err := excelize.OpenReader(rdr)
	if err != nil { return nil, fmt.Errorf("%s: %w", name, err) }
	defer f.Close()

	rr,err := NewRowReader(f, sheetName)
	if err != nil { return nil, fmt.Errorf("%s: %w", name, err) }
	defer rr.Close()

	if err := rr.Require(fq.RequiredColumns...); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	out := []fq.FlightRecord{}
	for {
		row,err := rr.Read()
		if err == io.EOF { break }
		if err != nil { return nil, fmt.Errorf("%s: %w", name, err) }
		if row.IsBlank() { continue }

		rec,err := row.ToFlightRecord()
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, rr.Line(), err)
		}
		out = append(out, rec)
	}

	return out, nil
}

// }}}
// {{{ ReadFlightRecords

// ReadFlightRecords opens the path (local, or gs://) and parses it.
func ReadFlightRecords(ctx context.Context, path, sheetName string) ([]fq.FlightRecord, error) {
	rdr,err := Open(ctx, path)
	if err != nil { return nil, err }
	defer rdr.Close()

	return ReadFrom(path, rdr, sheetName)
}

// ReadTablePath is ReadTable for a local or gs:// path.
func ReadTablePath(ctx context.Context, path, sheetName string) ([][]string, error) {
	rdr,err := Open(ctx, path)
	if err != nil { return nil, err }
	defer rdr.Close()

	tbl,err := ReadTable(rdr, sheetName)
	if err != nil { return nil, fmt.Errorf("%s: %w", path, err) }
	return tbl, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
