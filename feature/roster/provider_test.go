package roster

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"figurine-manager/core/storage/mocks"
	"figurine-manager/core/telemetry"

	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func body(s string) io.ReadCloser {
	return io.NopCloser(bytes.NewBufferString(s))
}

func TestProvider_RequiredModels(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "figurines", "rosters/border.json", mock.Anything).
		Return(body(borderPatrol), nil).Once()

	p := NewProvider(client, "figurines", "rosters", time.Minute, nil)
	required, err := p.RequiredModels(context.Background(), "border")
	require.NoError(t, err)
	assert.Len(t, required, 4)
	client.AssertExpectations(t)
}

func TestProvider_CachesDocuments(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "figurines", "rosters/border.json", mock.Anything).
		Return(body(borderPatrol), nil).Once()

	metrics := telemetry.NewMetrics()
	p := NewProvider(client, "figurines", "rosters", time.Minute, metrics)

	for i := 0; i < 3; i++ {
		_, err := p.Document(context.Background(), "border")
		require.NoError(t, err)
	}

	client.AssertNumberOfCalls(t, "GetObject", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.RosterCacheTotal.WithLabelValues("miss")))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.RosterCacheTotal.WithLabelValues("hit")))

	client.On("GetObject", mock.Anything, "figurines", "rosters/border.json", mock.Anything).
		Return(body(borderPatrol), nil).Once()
	p.Invalidate("border")
	_, err := p.Document(context.Background(), "border")
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "GetObject", 2)
}

func TestProvider_NotFound(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "figurines", "rosters/ghost.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	p := NewProvider(client, "figurines", "rosters", time.Minute, nil)
	_, err := p.RequiredModels(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProvider_StorageError(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "figurines", "rosters/x.json", mock.Anything).
		Return(nil, errors.New("connection refused"))

	p := NewProvider(client, "figurines", "rosters", time.Minute, nil)
	_, err := p.Document(context.Background(), "x")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestProvider_InvalidKeyNeverReachesStorage(t *testing.T) {
	client := new(mocks.Client)
	p := NewProvider(client, "figurines", "rosters", time.Minute, nil)

	_, err := p.Document(context.Background(), "../secrets")
	assert.ErrorIs(t, err, ErrInvalidKey)
	client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProvider_Summaries(t *testing.T) {
	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo, 4)
	ch <- minio.ObjectInfo{Key: "rosters/border.json"}
	ch <- minio.ObjectInfo{Key: "rosters/notes.txt"}
	ch <- minio.ObjectInfo{Key: "rosters/old/archived.json"}
	ch <- minio.ObjectInfo{Key: "rosters/empty.json"}
	close(ch)

	client.On("ListObjects", mock.Anything, "figurines", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
	client.On("GetObject", mock.Anything, "figurines", "rosters/border.json", mock.Anything).Return(body(borderPatrol), nil)
	client.On("GetObject", mock.Anything, "figurines", "rosters/empty.json", mock.Anything).
		Return(body(`{"schema_version": "1.0.0", "name": "Empty"}`), nil)

	p := NewProvider(client, "figurines", "rosters", 0, nil)
	summaries, err := p.Summaries(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "border", summaries[0].Key)
	assert.Equal(t, 4, summaries[0].Models)
	assert.Equal(t, "empty", summaries[1].Key)
	assert.Zero(t, summaries[1].Models)
}
