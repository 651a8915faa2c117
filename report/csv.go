package report

import(
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

func (r *Report)OutputAsCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(r.HeadersText); err != nil { return err }
	for _,row := range r.RowsText {
		if err := csvWriter.Write(row); err != nil { return err }
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// OutputAsText writes the rows as an aligned table, padded by rune count.
func (r *Report)OutputAsText(w io.Writer) error {
	widths := make([]int, len(r.HeadersText))
	measure := func(row []string) {
		for i,cell := range row {
			if i >= len(widths) { widths = append(widths, 0) }
			if n := utf8.RuneCountInString(cell); n > widths[i] { widths[i] = n }
		}
	}
	measure(r.HeadersText)
	for _,row := range r.RowsText { measure(row) }

	line := func(row []string) string {
		cells := []string{}
		for i,cell := range row {
			cells = append(cells, cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		}
		return strings.TrimRight(strings.Join(cells, "  "), " ") + "\n"
	}

	str := fmt.Sprintf("---- report %s (%d rows) ----\n", r.Name, len(r.RowsText))
	str += line(r.HeadersText)
	for _,row := range r.RowsText { str += line(row) }

	_,err := io.WriteString(w, str)
	return err
}
