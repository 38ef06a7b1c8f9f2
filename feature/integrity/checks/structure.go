package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"figurine-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Structure statuses.
const (
	StructureOK             = "ok"
	StructureMissingBucket  = "missing_bucket"
	StructureMissingFolders = "missing_folders"
	StructureFixed          = "fixed"
)

// StructureReport describes the bucket layout rosters and reports rely on.
type StructureReport struct {
	Bucket       string   `json:"bucket"`
	BucketExists bool     `json:"bucket_exists"`
	Missing      []string `json:"missing"`
	Created      []string `json:"created,omitempty"`
	Status       string   `json:"status"`
}

// NeedsFix reports whether FixStructure would change anything.
func (r *StructureReport) NeedsFix() bool {
	return !r.BucketExists || len(r.Missing) > 0
}

// CheckStructure looks for the bucket and a marker object under each folder.
// A missing bucket is reported, not returned as an error; every folder then counts as missing.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, folders []string) (*StructureReport, error) {
	report := &StructureReport{Bucket: bucket, Missing: []string{}, Status: StructureOK}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		report.Missing = append(report.Missing, folders...)
		report.Status = StructureMissingBucket
		return report, nil
	}

	for _, folder := range folders {
		if !hasObjects(ctx, client, bucket, folderKey(folder)) {
			report.Missing = append(report.Missing, folder)
		}
	}
	if len(report.Missing) > 0 {
		report.Status = StructureMissingFolders
	}
	return report, nil
}

// FixStructure creates the bucket when absent, then an empty marker object per missing folder.
// It stops at the first failure; report.Created lists what was done until then.
func FixStructure(ctx context.Context, client storage.Client, region string, logger *zap.Logger, report *StructureReport) error {
	if !report.BucketExists {
		if err := client.MakeBucket(ctx, report.Bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			logger.Error("Failed to create bucket", zap.String("bucket", report.Bucket), zap.Error(err))
			return fmt.Errorf("failed to create bucket %s: %w", report.Bucket, err)
		}
		report.BucketExists = true
		logger.Info("Created bucket", zap.String("bucket", report.Bucket))
	}

	for _, folder := range report.Missing {
		_, err := client.PutObject(ctx, report.Bucket, folderKey(folder), bytes.NewReader(nil), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
		report.Created = append(report.Created, folder)
		logger.Info("Created missing folder", zap.String("folder", folder))
	}

	report.Missing = []string{}
	report.Status = StructureFixed
	return nil
}

func hasObjects(ctx context.Context, client storage.Client, bucket, prefix string) bool {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, MaxKeys: 1}) {
		return obj.Err == nil
	}
	return false
}

func folderKey(folder string) string {
	return strings.TrimSuffix(folder, "/") + "/"
}
