package flightquota

import(
	"errors"
	"fmt"
	"strings"
)

// {{{ notes

/* The source data joins multiple values into one cell with a hyphen:

   国家: 英国-德国            (a flight serving two countries)
   航线: 上海浦东-安克雷奇-芝加哥  (a route with a technical stop)

 The contract for these composite strings is:
   * the delimiter is CompositeDelimiter, and nothing else
   * whitespace around each token is not significant
   * every token must be non-empty; "美国-" and "-美国" and "美国--日本" are malformed
   * for countries, repeated tokens are collapsed keeping the first, as a record never
     names a country twice; a route may pass through a city twice, so its order is kept

 */

// }}}

const CompositeDelimiter = "-"

var ErrMalformedComposite = errors.New("malformed composite")

// SplitComposite tokenizes a hyphen-joined string, dropping repeats. A string with no
// delimiter yields a single token.
func SplitComposite(s string) ([]string, error) {
	toks,err := SplitRoute(s)
	if err != nil { return nil, err }

	out := []string{}
	seen := map[string]bool{}
	for _,tok := range toks {
		if seen[tok] { continue }
		seen[tok] = true
		out = append(out, tok)
	}
	return out, nil
}

// SplitRoute tokenizes like SplitComposite, but keeps every token in order.
func SplitRoute(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty string", ErrMalformedComposite)
	}

	out := []string{}
	for i,tok := range strings.Split(s, CompositeDelimiter) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, fmt.Errorf("%w: '%s' has an empty token at position %d", ErrMalformedComposite, s, i)
		}
		out = append(out, tok)
	}
	return out, nil
}

// IsComposite is true if the string names more than one thing.
func IsComposite(s string) bool {
	return strings.Contains(s, CompositeDelimiter)
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
