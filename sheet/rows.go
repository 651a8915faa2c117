package sheet

import(
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// {{{ notes

/* The spreadsheets come as .xlsx workbooks. The first row of the sheet is the header;
 every row after that is data. We turn each row into a map from header name to value,
 so that column order in the workbook doesn't matter.

 Excel trims trailing empty cells off a row, so a short row is padded out with blanks.
 A row longer than the header is an error, as we can't say which column it belongs to.

 */

// }}}

type Row map[string]string

// Has is true if the row carries a non-blank value for the column
func (r Row)Has(col string) bool {
	return strings.TrimSpace(r[col]) != ""
}

func (r Row)IsBlank() bool {
	for _,v := range r {
		if strings.TrimSpace(v) != "" { return false }
	}
	return true
}

type RowReader struct {
	rows     *excelize.Rows
	headers  []string
	line     int // 1-based row number of the last row read, as Excel shows it
}

// {{{ NewRowReader

// NewRowReader reads the header row of the named sheet; a blank name means the first sheet.
func NewRowReader(f *excelize.File, sheetName string) (*RowReader, error) {
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}

	rows,err := f.Rows(sheetName)
	if err != nil { return nil, fmt.Errorf("sheet '%s': %w", sheetName, err) }

	rdr := RowReader{rows: rows}

	if !rows.Next() {
		rows.Close()
		return nil, fmt.Errorf("sheet '%s': no header row", sheetName)
	}
	headers,err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, fmt.Errorf("sheet '%s' header: %w", sheetName, err)
	}
	for _,h := range headers {
		rdr.headers = append(rdr.headers, strings.TrimSpace(h))
	}
	rdr.line = 1

	return &rdr, nil
}

// }}}

func (r *RowReader)Headers() []string { return r.headers }
func (r *RowReader)Line() int { return r.line }
func (r *RowReader)Close() error { return r.rows.Close() }

// {{{ r.Require

// Require checks that every column is present in the header
func (r *RowReader)Require(cols ...string) error {
	have := map[string]bool{}
	for _,h := range r.headers { have[h] = true }

	missing := []string{}
	for _,col := range cols {
		if !have[col] { missing = append(missing, col) }
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing column(s) %s (have: %s)", strings.Join(missing, ","),
			strings.Join(r.headers, ","))
	}
	return nil
}

// }}}
// {{{ r.Read

// Read returns the next row, or io.EOF when there are none left.
func (r *RowReader)Read() (Row,error) {
	m := Row{}

	if !r.rows.Next() {
		if err := r.rows.Error(); err != nil { return m, err }
		return m, io.EOF
	}
	r.line++

	vals,err := r.rows.Columns()
	if err != nil {
		return m,err
	} else if len(vals) > len(r.headers) {
		return m, fmt.Errorf("row %d: header/val mismatch (%d/%d)", r.line, len(r.headers), len(vals))
	}

	for i,h := range r.headers {
		if h == "" { continue }
		if i < len(vals) {
			m[h] = vals[i]
		} else {
			m[h] = ""
		}
	}

	return m,nil
}

// }}}

// {{{ ReadTable

// ReadTable loads every non-blank row of a sheet, as [][]string with the header first;
// it is the shape the reference tables are built from.
func ReadTable(rdr io.Reader, sheetName string) ([][]string, error) {
	f,err := excelize.OpenReader(rdr)
	if err != nil { return nil, err }
	defer f.Close()

	rr,err := NewRowReader(f, sheetName)
	if err != nil { return nil, err }
	defer rr.Close()

	out := [][]string{ rr.Headers() }
	for {
		row,err := rr.Read()
		if err == io.EOF { break }
		if err != nil { return nil, err }
		if row.IsBlank() { continue }

		vals := make([]string, len(rr.Headers()))
		for i,h := range rr.Headers() { vals[i] = strings.TrimSpace(row[h]) }
		out = append(out, vals)
	}

	return out, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
