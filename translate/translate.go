// Package translate turns the distinct country strings of a flight record set into a
// dictionary in some other language.
package translate

import(
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"io"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	gtranslate "google.golang.org/api/translate/v2"

	fq "github.com/skypies/flightquota"
)

const MaxBatch = 100

type Translator interface {
	// Translate returns one string per input, in the same order.
	Translate(ctx context.Context, texts []string, target string) ([]string, error)
}

// {{{ Google

type Google struct {
	Service *gtranslate.Service
	Source  string // blank to let the service detect it
}

func NewGoogle(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Google, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc,err := gtranslate.NewService(ctx, opts...)
	if err != nil { return nil, fmt.Errorf("translate.NewService: %w", err) }
	return &Google{Service:svc}, nil
}

func (g *Google)Translate(ctx context.Context, texts []string, target string) ([]string, error) {
	out := []string{}
	for start:=0; start<len(texts); start+=MaxBatch {
		end := start + MaxBatch
		if end > len(texts) { end = len(texts) }

		call := g.Service.Translations.List(texts[start:end], target).Format("text").Context(ctx)
		if g.Source != "" { call = call.Source(g.Source) }
		resp,err := call.Do()
		if err != nil { return nil, fmt.Errorf("translate [%d:%d]: %w", start, end, err) }

		if len(resp.Translations) != end-start {
			return nil, fmt.Errorf("translate [%d:%d]: got %d results", start, end, len(resp.Translations))
		}
		for _,t := range resp.Translations {
			out = append(out, html.UnescapeString(t.TranslatedText))
		}
	}
	return out, nil
}

// }}}

// {{{ Dictionary

// Dictionary keeps its keys in the order they were first seen.
type Dictionary struct {
	Target  string
	Keys    []string
	Values  map[string]string
}

func (d Dictionary)Len() int { return len(d.Keys) }

func (d Dictionary)String() string {
	str := fmt.Sprintf("--- %s (%d entries) ---\n", d.Target, len(d.Keys))
	for _,k := range d.Keys {
		str += fmt.Sprintf(" %s: %s\n", k, d.Values[k])
	}
	return str
}

func (d Dictionary)WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{fq.ColCountry, d.Target}); err != nil { return err }
	for _,k := range d.Keys {
		if err := cw.Write([]string{k, d.Values[k]}); err != nil { return err }
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes a single object; encoding/json would sort the keys, so the object is
// assembled by hand to keep first-seen order.
func (d Dictionary)WriteJSON(w io.Writer) error {
	if _,err := io.WriteString(w, "{"); err != nil { return err }
	for i,k := range d.Keys {
		kb,_ := json.Marshal(k)
		vb,_ := json.Marshal(d.Values[k])
		sep := ",\n  "
		if i == 0 { sep = "\n  " }
		if _,err := fmt.Fprintf(w, "%s%s: %s", sep, kb, vb); err != nil { return err }
	}
	_,err := io.WriteString(w, "\n}\n")
	return err
}

// }}}

// {{{ BuildDictionary

// BuildDictionary translates each distinct 国家 string once. Composite strings are
// translated as they stand.
func BuildDictionary(ctx context.Context, tr Translator, records []fq.FlightRecord, target string, logger *zap.Logger) (Dictionary, error) {
	if logger == nil { logger = zap.NewNop() }

	d := Dictionary{Target:target, Keys:[]string{}, Values:map[string]string{}}
	seen := map[string]bool{}
	for _,r := range records {
		if seen[r.Country] { continue }
		seen[r.Country] = true
		d.Keys = append(d.Keys, r.Country)
	}
	if len(d.Keys) == 0 { return d, nil }

	logger.Info("translating", zap.Int("distinct", len(d.Keys)), zap.String("target", target))
	vals,err := tr.Translate(ctx, d.Keys, target)
	if err != nil { return d, err }
	if len(vals) != len(d.Keys) {
		return d, fmt.Errorf("translator returned %d values for %d inputs", len(vals), len(d.Keys))
	}

	for i,k := range d.Keys {
		d.Values[k] = vals[i]
	}
	return d, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
