package translate

// go test -v github.com/skypies/flightquota/translate

import(
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	fq "github.com/skypies/flightquota"
)

type fakeTranslator struct {
	table map[string]string
	calls [][]string
}

func (f *fakeTranslator)Translate(ctx context.Context, texts []string, target string) ([]string, error) {
	f.calls = append(f.calls, texts)
	out := []string{}
	for _,t := range texts {
		v,ok := f.table[t]
		if !ok { return nil, errors.New("no translation for "+t) }
		out = append(out, v)
	}
	return out, nil
}

func records(countries ...string) []fq.FlightRecord {
	out := []fq.FlightRecord{}
	for _,c := range countries {
		out = append(out, fq.FlightRecord{Country:c, Flag:fq.PassengerCargoMixed, WeeklyQuota:1})
	}
	return out
}

func TestBuildDictionary(t *testing.T) {
	f := &fakeTranslator{table:map[string]string{
		"美国": "United States", "日本": "Japan", "美国-日本": "United States-Japan",
	}}
	d,err := BuildDictionary(context.Background(), f, records("美国","日本","美国","美国-日本","日本"), "en", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"美国","日本","美国-日本"}, d.Keys)
	assert.Equal(t, "Japan", d.Values["日本"])
	require.Len(t, f.calls, 1)
	assert.Len(t, f.calls[0], 3, "each distinct string translated once")
}

func TestBuildDictionaryEmpty(t *testing.T) {
	f := &fakeTranslator{}
	d,err := BuildDictionary(context.Background(), f, nil, "en", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
	assert.Len(t, f.calls, 0)
}

func TestBuildDictionaryError(t *testing.T) {
	f := &fakeTranslator{table:map[string]string{}}
	_,err := BuildDictionary(context.Background(), f, records("火星"), "en", nil)
	assert.Error(t, err)
}

func TestWriters(t *testing.T) {
	d := Dictionary{
		Target: "en",
		Keys: []string{"美国","日本"},
		Values: map[string]string{"美国":"United States", "日本":"Japan"},
	}

	var csvBuf bytes.Buffer
	require.NoError(t, d.WriteCSV(&csvBuf))
	assert.Equal(t, "国家,en\n美国,United States\n日本,Japan\n", csvBuf.String())

	var jsonBuf bytes.Buffer
	require.NoError(t, d.WriteJSON(&jsonBuf))
	assert.JSONEq(t, `{"美国":"United States","日本":"Japan"}`, jsonBuf.String())
	assert.Less(t, strings.Index(jsonBuf.String(), "美国"), strings.Index(jsonBuf.String(), "日本"))
}

func TestGoogleBatches(t *testing.T) {
	requests := 0
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if err := r.ParseForm(); err != nil { t.Error(err) }
		qs := r.Form["q"]
		parts := []string{}
		for _,q := range qs {
			parts = append(parts, fmt.Sprintf(`{"translatedText":"T(%s)"}`, q))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data":{"translations":[%s]}}`, strings.Join(parts, ","))
	}))
	defer s.Close()

	g,err := NewGoogle(context.Background(), "test-key",
		option.WithEndpoint(s.URL+"/language/translate/"), option.WithHTTPClient(s.Client()))
	require.NoError(t, err)

	in := []string{}
	for i:=0; i<MaxBatch+5; i++ {
		in = append(in, fmt.Sprintf("c%d", i))
	}
	out,err := g.Translate(context.Background(), in, "en")
	require.NoError(t, err)
	require.Len(t, out, len(in))
	assert.Equal(t, "T(c0)", out[0])
	assert.Equal(t, fmt.Sprintf("T(c%d)", MaxBatch+4), out[len(out)-1])
	assert.Equal(t, 2, requests)
}
