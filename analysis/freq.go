package analysis

import(
	"fmt"

	fq "github.com/skypies/flightquota"
)

type Bin struct {
	Label string
	Count int
}

// A Tally counts occurrences of labels, remembering the order in which each label
// was first seen (charts are drawn in that order).
type Tally struct {
	bins  []Bin
	index map[string]int
}

func NewTally() *Tally {
	return &Tally{index: map[string]int{}}
}

func (t *Tally)Add(label string) {
	if i,exists := t.index[label]; exists {
		t.bins[i].Count++
		return
	}
	t.index[label] = len(t.bins)
	t.bins = append(t.bins, Bin{Label:label, Count:1})
}

func (t *Tally)Count(label string) int {
	if i,exists := t.index[label]; exists { return t.bins[i].Count }
	return 0
}

// Bins returns a copy of the bins, in first-seen order
func (t *Tally)Bins() []Bin {
	return append([]Bin{}, t.bins...)
}

func (t *Tally)Len() int { return len(t.bins) }

// Total is the number of labels added
func (t *Tally)Total() int {
	n := 0
	for _,b := range t.bins { n += b.Count }
	return n
}

func (t *Tally)String() string {
	str := ""
	for _,b := range t.bins {
		str += fmt.Sprintf("  %-16s:  %5d\n", b.Label, b.Count)
	}
	return str
}

// {{{ TallyLabels, TallyColumn

func TallyLabels(labels []string) *Tally {
	t := NewTally()
	for _,l := range labels { t.Add(l) }
	return t
}

// TallyColumn counts the values of one column across the records.
func TallyColumn(records []fq.FlightRecord, col string) (*Tally, error) {
	t := NewTally()
	for _,r := range records {
		v,err := r.Field(col)
		if err != nil { return nil, err }
		t.Add(v)
	}
	return t, nil
}

// }}}
