package sheet

import(
	"context"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"

	fq "github.com/skypies/flightquota"
)

// {{{ gcsReadCloser

// Closes the object reader, and then the client that made it
type gcsReadCloser struct {
	*storage.Reader
	client *storage.Client
}

func (g gcsReadCloser)Close() error {
	err := g.Reader.Close()
	if cerr := g.client.Close(); err == nil { err = cerr }
	return err
}

// }}}

// {{{ Open

// Open returns a reader for a local file, or for a Cloud Storage object when the path
// looks like gs://bucket/object.
func Open(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket,object,isGCS := fq.ParseGCSPath(path)
	if !isGCS {
		f,err := os.Open(path)
		if err != nil { return nil, fmt.Errorf("open '%s': %w", path, err) }
		return f,nil
	}

	if object == "" { return nil, fmt.Errorf("GCS-Open '%s': no object named", path) }

	client,err := storage.NewClient(ctx)
	if err != nil { return nil, fmt.Errorf("GCS-Open %s|%s: %w", bucket, object, err) }

	rdr,err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("GCS-Open %s|%s: %w", bucket, object, err)
	}

	return gcsReadCloser{Reader:rdr, client:client}, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
