// Package publish writes the artefacts of a run somewhere: a local directory or a Cloud
// Storage prefix, and optionally a BigQuery table.
package publish

import(
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"

	fq "github.com/skypies/flightquota"
)

// A Sink hands out writers for named artefacts under one destination.
type Sink struct {
	Dir     string // local destination; blank when writing to GCS
	Bucket  string
	Prefix  string

	client  *storage.Client
}

// NewSink accepts a local directory or gs://bucket[/prefix].
func NewSink(ctx context.Context, dest string) (*Sink, error) {
	if dest == "" { return nil, fmt.Errorf("sink: no destination") }

	bucket,prefix,isGCS := fq.ParseGCSPath(dest)
	if !isGCS {
		if strings.HasPrefix(dest, "gs://") { return nil, fmt.Errorf("sink: bad GCS path '%s'", dest) }
		if err := os.MkdirAll(dest, 0755); err != nil { return nil, fmt.Errorf("sink: %w", err) }
		return &Sink{Dir:dest}, nil
	}

	client,err := storage.NewClient(ctx)
	if err != nil { return nil, fmt.Errorf("sink %s: %w", dest, err) }

	return &Sink{Bucket:bucket, Prefix:strings.Trim(prefix, "/"), client:client}, nil
}

func (s *Sink)IsGCS() bool { return s.client != nil }

func (s *Sink)objectName(name string) string {
	if s.Prefix == "" { return name }
	return path.Join(s.Prefix, name)
}

// URI is where the named artefact ends up.
func (s *Sink)URI(name string) string {
	if s.IsGCS() { return fmt.Sprintf("gs://%s/%s", s.Bucket, s.objectName(name)) }
	return filepath.Join(s.Dir, name)
}

func contentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":     return "image/png"
	case ".pdf":     return "application/pdf"
	case ".csv":     return "text/csv"
	case ".json":    return "application/json"
	case ".geojson": return "application/geo+json"
	case ".txt":     return "text/plain"
	default:         return "application/octet-stream"
	}
}

// {{{ s.Create

// Create opens the named artefact for writing; nothing is guaranteed to be stored until
// Close returns without error.
func (s *Sink)Create(ctx context.Context, name string) (io.WriteCloser, error) {
	if !s.IsGCS() {
		f,err := os.Create(filepath.Join(s.Dir, name))
		if err != nil { return nil, fmt.Errorf("sink: %w", err) }
		return f, nil
	}

	w := s.client.Bucket(s.Bucket).Object(s.objectName(name)).NewWriter(ctx)
	w.ContentType = contentType(name)
	return w, nil
}

// }}}
// {{{ s.WriteFunc

// WriteFunc creates the artefact, lets f fill it, and closes it, keeping the first error.
// If f fails nothing is stored: the GCS upload is cancelled, the local file removed.
func (s *Sink)WriteFunc(ctx context.Context, name string, f func(io.Writer) error) error {
	wctx,cancel := context.WithCancel(ctx)
	defer cancel()

	w,err := s.Create(wctx, name)
	if err != nil { return err }

	if err := f(w); err != nil {
		cancel()
		w.Close()
		if !s.IsGCS() { os.Remove(s.URI(name)) }
		return fmt.Errorf("%s: %w", s.URI(name), err)
	}

	if err := w.Close(); err != nil { return fmt.Errorf("%s: %w", s.URI(name), err) }
	return nil
}

// }}}

func (s *Sink)Close() error {
	if s.client == nil { return nil }
	return s.client.Close()
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
