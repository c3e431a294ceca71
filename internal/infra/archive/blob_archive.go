// Package archive exports generated reports to a gocloud.dev bucket.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"trinity/config"
	"trinity/internal/domain/entity"
	"trinity/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by URL scheme.
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the dependencies of the report archive.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewReportArchive opens the configured bucket, or returns a no-op archive when none is set.
func NewReportArchive(ctx context.Context, params Params) (service.ReportArchive, error) {
	if params.Config.Report == nil || params.Config.Report.ArchiveBucketURL == "" {
		return noopArchive{}, nil
	}

	bucket, err := blob.OpenBucket(ctx, params.Config.Report.ArchiveBucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open report archive bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Report archive enabled", slog.String("bucket", params.Config.Report.ArchiveBucketURL))

	return NewBlobArchive(bucket), nil
}

// BlobArchive writes each report as one JSON object.
type BlobArchive struct {
	bucket *blob.Bucket
}

// NewBlobArchive wraps an open bucket.
func NewBlobArchive(bucket *blob.Bucket) *BlobArchive {
	return &BlobArchive{bucket: bucket}
}

// Store writes the report under reports/<type>/<yyyy>/<mm>/<id>.json and returns the key.
func (a *BlobArchive) Store(ctx context.Context, report *entity.Report) (string, error) {
	raw, err := json.Marshal(report)
	if err != nil {
		return "", errors.Wrap(err, "encode report")
	}

	key := ObjectKey(report)
	if err := a.bucket.WriteAll(ctx, key, raw, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return "", errors.Wrapf(err, "write %s", key)
	}

	return key, nil
}

// ObjectKey is the bucket key of a report.
func ObjectKey(report *entity.Report) string {
	return fmt.Sprintf("reports/%s/%04d/%02d/%s.json",
		report.Type, report.CreatedAt.Year(), int(report.CreatedAt.Month()), report.ID)
}

type noopArchive struct{}

func (noopArchive) Store(context.Context, *entity.Report) (string, error) {
	return "", nil
}
