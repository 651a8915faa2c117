package publish

import(
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skypies/flightquota/report"
)

// CountryQuotaRow is the BigQuery schema for one line of the quota report.
type CountryQuotaRow struct {
	RunID        string    `bigquery:"run_id" json:"run_id"`
	RunTime      time.Time `bigquery:"run_time" json:"run_time"`
	Country      string    `bigquery:"country" json:"country"`
	EnglishName  string    `bigquery:"english_name" json:"english_name"`
	ISOCode      string    `bigquery:"iso_code" json:"iso_code"`
	Continent    string    `bigquery:"continent" json:"continent"`
	WeeklyQuota  int       `bigquery:"weekly_quota" json:"weekly_quota"`
	EdgeWeight   float64   `bigquery:"edge_weight" json:"edge_weight"`
	NodeWeight   bigquery.NullFloat64 `bigquery:"node_weight" json:"node_weight"`
}

// NewCountryQuotaRows stamps every row of a quota report with the same run.
func NewCountryQuotaRows(runID string, runTime time.Time, in []report.CountryRow) []CountryQuotaRow {
	out := []CountryQuotaRow{}
	for _,cr := range in {
		row := CountryQuotaRow{
			RunID: runID,
			RunTime: runTime.UTC(),
			Country: cr.Country,
			EnglishName: cr.EnglishName,
			ISOCode: cr.ISOCode,
			Continent: cr.Continent,
			WeeklyQuota: cr.Quota,
			EdgeWeight: cr.EdgeWeight,
		}
		if cr.HasNodeWeight {
			row.NodeWeight = bigquery.NullFloat64{Float64:cr.NodeWeight, Valid:true}
		}
		out = append(out, row)
	}
	return out
}

// WriteJSONLines writes newline-delimited JSON, as a BigQuery load job wants it.
func WriteJSONLines(w io.Writer, rows []CountryQuotaRow) error {
	encoder := json.NewEncoder(w)
	for _,row := range rows {
		if err := encoder.Encode(row); err != nil { return err }
	}
	return nil
}

// savers wraps each row with a fresh insert id, so retried inserts are deduplicated.
func savers(rows []CountryQuotaRow) []*bigquery.StructSaver {
	out := []*bigquery.StructSaver{}
	for i := range rows {
		out = append(out, &bigquery.StructSaver{Struct:rows[i], InsertID:uuid.NewString()})
	}
	return out
}

// {{{ BigQuery

type BigQuery struct {
	ProjectID  string
	DatasetID  string
	TableID    string
	Logger     *zap.Logger

	client     *bigquery.Client
}

func NewBigQuery(ctx context.Context, project, dataset, table string, logger *zap.Logger) (*BigQuery, error) {
	client,err := bigquery.NewClient(ctx, project)
	if err != nil { return nil, fmt.Errorf("Creating bigquery client: %w", err) }
	if logger == nil { logger = zap.NewNop() }
	return &BigQuery{ProjectID:project, DatasetID:dataset, TableID:table, Logger:logger, client:client}, nil
}

func (bq *BigQuery)table() *bigquery.Table {
	return bq.client.Dataset(bq.DatasetID).Table(bq.TableID)
}

// Put streams the rows into the table.
func (bq *BigQuery)Put(ctx context.Context, rows []CountryQuotaRow) error {
	if len(rows) == 0 { return nil }
	if err := bq.table().Inserter().Put(ctx, savers(rows)); err != nil {
		return fmt.Errorf("bigquery %s.%s put: %w", bq.DatasetID, bq.TableID, err)
	}
	bq.Logger.Info("bigquery rows inserted", zap.Int("n", len(rows)),
		zap.String("table", bq.DatasetID+"."+bq.TableID))
	return nil
}

// Load submits a load job for a newline-delimited JSON file already in Cloud Storage,
// and waits for it.
func (bq *BigQuery)Load(ctx context.Context, gcsURI string) error {
	gcsSrc := bigquery.NewGCSReference(gcsURI)
	gcsSrc.SourceFormat = bigquery.JSON

	loader := bq.table().LoaderFrom(gcsSrc)
	loader.WriteDisposition = bigquery.WriteAppend

	job,err := loader.Run(ctx)
	if err != nil { return fmt.Errorf("Submission of load job: %w", err) }

	status,err := job.Wait(ctx)
	if err != nil {
		return fmt.Errorf("Failure determining status: %w", err)
	} else if err := status.Err(); err != nil {
		detailedErrStr := ""
		for i,innerErr := range status.Errors {
			detailedErrStr += fmt.Sprintf(" [%2d] %v\n", i, innerErr)
		}
		bq.Logger.Error("bigquery load job", zap.Error(err), zap.String("details", detailedErrStr))
		return fmt.Errorf("Job error: %w\n--\n%s", err, detailedErrStr)
	}

	bq.Logger.Info("bigquery load job done", zap.String("src", gcsURI), zap.String("job", job.ID()))
	return nil
}

func (bq *BigQuery)Close() error { return bq.client.Close() }

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
