package geocode

import(
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	fq "github.com/skypies/flightquota"
)

// {{{ notes

/* https://nominatim.org/release-docs/latest/api/Search/

 GET https://nominatim.openstreetmap.org/search?q=San+Francisco&format=json&limit=1

 [{"place_id":...,"lat":"37.7790262","lon":"-122.4199061","display_name":"San Francisco, ..."}]

 The public server's usage policy asks for an identifying User-Agent, and no more than
 one request per second; hence the limiter.

 */

// }}}

const DefaultNominatimURL = "https://nominatim.openstreetmap.org/search"

type Nominatim struct {
	Client     *http.Client
	Endpoint   string
	UserAgent  string
	Limiter    *rate.Limiter // nil means unlimited
}

type nominatimPlace struct {
	Lat          string `json:"lat"`
	Lon          string `json:"lon"`
	DisplayName  string `json:"display_name"`
}

// NewNominatim builds a client; a zero timeout means no timeout, and a non-positive
// rate means no limiter.
func NewNominatim(endpoint, userAgent string, timeout time.Duration, perSec float64) *Nominatim {
	if endpoint == "" { endpoint = DefaultNominatimURL }
	n := Nominatim{
		Client: &http.Client{Timeout:timeout},
		Endpoint: endpoint,
		UserAgent: userAgent,
	}
	if perSec > 0 {
		n.Limiter = rate.NewLimiter(rate.Limit(perSec), 1)
	}
	return &n
}

// {{{ n.Geocode

func (n *Nominatim)Geocode(ctx context.Context, query string) (fq.Location, error) {
	if n.Limiter != nil {
		if err := n.Limiter.Wait(ctx); err != nil { return fq.Location{}, err }
	}

	args := url.Values{}
	args.Set("q", query)
	args.Set("format", "json")
	args.Set("limit", "1")

	req,err := http.NewRequestWithContext(ctx, "GET", n.Endpoint+"?"+args.Encode(), nil)
	if err != nil { return fq.Location{}, err }
	if n.UserAgent != "" { req.Header.Set("User-Agent", n.UserAgent) }

	client := n.Client
	if client == nil { client = http.DefaultClient }

	resp,err := client.Do(req)
	if err != nil { return fq.Location{}, fmt.Errorf("nominatim '%s': %w", query, err) }
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fq.Location{}, fmt.Errorf("nominatim '%s': HTTP %d", query, resp.StatusCode)
	}

	places := []nominatimPlace{}
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return fq.Location{}, fmt.Errorf("nominatim '%s': bad response: %w", query, err)
	}
	if len(places) == 0 {
		return fq.Location{}, fmt.Errorf("nominatim '%s': %w", query, ErrNotFound)
	}

	lat,err1  := strconv.ParseFloat(places[0].Lat, 64)
	long,err2 := strconv.ParseFloat(places[0].Lon, 64)
	if err1 != nil || err2 != nil {
		return fq.Location{}, fmt.Errorf("nominatim '%s': bad position (%q,%q)", query,
			places[0].Lat, places[0].Lon)
	}

	return fq.Location{Lat:lat, Long:long}, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
