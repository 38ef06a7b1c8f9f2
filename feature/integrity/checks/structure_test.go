package checks

import (
	"context"
	"errors"
	"testing"

	"figurine-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var folders = []string{"rosters", "reports"}

func listing(objs ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objs))
	for _, o := range objs {
		ch <- o
	}
	close(ch)
	return ch
}

func onPrefix(prefix string) any {
	return mock.MatchedBy(func(opts minio.ListObjectsOptions) bool { return opts.Prefix == prefix })
}

func TestCheckStructure(t *testing.T) {
	ctx := context.Background()

	t.Run("BucketMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "figurines").Return(false, nil)

		report, err := CheckStructure(ctx, client, "figurines", folders)
		require.NoError(t, err)
		assert.False(t, report.BucketExists)
		assert.Equal(t, StructureMissingBucket, report.Status)
		assert.Equal(t, folders, report.Missing)
		assert.True(t, report.NeedsFix())
		client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("BucketCheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "figurines").Return(false, errors.New("dial tcp"))

		_, err := CheckStructure(ctx, client, "figurines", folders)
		assert.ErrorContains(t, err, "failed to check bucket existence")
	})

	t.Run("OneFolderMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "figurines").Return(true, nil)
		client.On("ListObjects", mock.Anything, "figurines", onPrefix("rosters/")).Return(listing(minio.ObjectInfo{Key: "rosters/"}))
		client.On("ListObjects", mock.Anything, "figurines", onPrefix("reports/")).Return(listing())

		report, err := CheckStructure(ctx, client, "figurines", folders)
		require.NoError(t, err)
		assert.Equal(t, []string{"reports"}, report.Missing)
		assert.Equal(t, StructureMissingFolders, report.Status)
	})

	t.Run("ListingErrorCountsAsMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "figurines").Return(true, nil)
		client.On("ListObjects", mock.Anything, "figurines", mock.Anything).Return(listing(minio.ObjectInfo{Err: errors.New("denied")}))

		report, err := CheckStructure(ctx, client, "figurines", []string{"rosters"})
		require.NoError(t, err)
		assert.Equal(t, []string{"rosters"}, report.Missing)
	})

	t.Run("AllPresent", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "figurines").Return(true, nil)
		for _, folder := range folders {
			client.On("ListObjects", mock.Anything, "figurines", onPrefix(folder+"/")).Return(listing(minio.ObjectInfo{Key: folder + "/a.json"}))
		}

		report, err := CheckStructure(ctx, client, "figurines", folders)
		require.NoError(t, err)
		assert.Empty(t, report.Missing)
		assert.Equal(t, StructureOK, report.Status)
		assert.False(t, report.NeedsFix())
	})
}

func TestFixStructure(t *testing.T) {
	ctx := context.Background()

	t.Run("Folders", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "figurines", "reports/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		report := &StructureReport{Bucket: "figurines", BucketExists: true, Missing: []string{"reports"}}
		require.NoError(t, FixStructure(ctx, client, "", zap.NewNop(), report))
		assert.Equal(t, []string{"reports"}, report.Created)
		assert.Empty(t, report.Missing)
		assert.Equal(t, StructureFixed, report.Status)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("MakeBucket", mock.Anything, "figurines", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)
		client.On("PutObject", mock.Anything, "figurines", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		report := &StructureReport{Bucket: "figurines", Missing: []string{"rosters", "reports"}}
		require.NoError(t, FixStructure(ctx, client, "eu-west-1", zap.NewNop(), report))
		assert.True(t, report.BucketExists)
		assert.Equal(t, folders, report.Created)
		client.AssertNumberOfCalls(t, "PutObject", 2)
	})

	t.Run("BucketError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("MakeBucket", mock.Anything, "figurines", mock.Anything).Return(errors.New("quota exceeded"))

		report := &StructureReport{Bucket: "figurines", Missing: folders}
		err := FixStructure(ctx, client, "", zap.NewNop(), report)
		assert.ErrorContains(t, err, "failed to create bucket figurines")
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("FolderError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "figurines", mock.Anything, mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, errors.New("access denied"))

		report := &StructureReport{Bucket: "figurines", BucketExists: true, Missing: folders}
		err := FixStructure(ctx, client, "", zap.NewNop(), report)
		assert.ErrorContains(t, err, "rosters")
		assert.Empty(t, report.Created)
		client.AssertNumberOfCalls(t, "PutObject", 1)
	})
}
