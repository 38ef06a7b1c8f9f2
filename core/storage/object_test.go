package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"figurine-manager/core/storage"
	"figurine-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("Decodes", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "bucket", "rosters/a.json", mock.Anything).
			Return(io.NopCloser(bytes.NewBufferString(`{"name":"a"}`)), nil)

		var doc struct{ Name string }
		require.NoError(t, storage.GetJSON(ctx, client, "bucket", "rosters/a.json", &doc))
		assert.Equal(t, "a", doc.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "bucket", "rosters/b.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey", Message: "gone"})

		var doc struct{}
		err := storage.GetJSON(ctx, client, "bucket", "rosters/b.json", &doc)
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})

	t.Run("OtherError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "bucket", "x.json", mock.Anything).Return(nil, errors.New("timeout"))

		var doc struct{}
		err := storage.GetJSON(ctx, client, "bucket", "x.json", &doc)
		assert.ErrorContains(t, err, "timeout")
		assert.False(t, errors.Is(err, storage.ErrObjectNotFound))
	})

	t.Run("BadJSON", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "bucket", "x.json", mock.Anything).
			Return(io.NopCloser(bytes.NewBufferString(`{`)), nil)

		var doc struct{}
		assert.ErrorContains(t, storage.GetJSON(ctx, client, "bucket", "x.json", &doc), "failed to decode x.json")
	})
}

func TestPutJSON(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("PutObject", ctx, "bucket", "reports/a.json", mock.Anything, mock.AnythingOfType("int64"),
		mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "application/json" })).
		Return(minio.UploadInfo{}, nil)

	require.NoError(t, storage.PutJSON(ctx, client, "bucket", "reports/a.json", map[string]int{"n": 1}))
	client.AssertExpectations(t)
}

func TestListKeys(t *testing.T) {
	ctx := context.Background()
	ch := make(chan minio.ObjectInfo, 4)
	ch <- minio.ObjectInfo{Key: "rosters/"}
	ch <- minio.ObjectInfo{Key: "rosters/alpha.json"}
	ch <- minio.ObjectInfo{Key: "rosters/notes.txt"}
	ch <- minio.ObjectInfo{Key: "rosters/beta.json"}
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", ctx, "bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	keys, err := storage.ListKeys(ctx, client, "bucket", "rosters", ".json")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, keys)
}

func TestObjectPath(t *testing.T) {
	assert.Equal(t, "reports/list/1.json", storage.ObjectPath("reports", "list", "1.json"))
	assert.Equal(t, "a/b", storage.ObjectPath("/a/", "b"))
}
