package source_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"park-sync/core/storage"
	"park-sync/core/storage/mocks"
	"park-sync/feature/park/source"
)

func listing(objects ...minio.ObjectInfo) func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	return func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo, len(objects))
		for _, obj := range objects {
			ch <- obj
		}
		close(ch)
		return ch
	}
}

const yamlCatalog = `
attractions:
  - id: 101
    name: Roaring Rapids
    waitTime: 15
performances:
  - id: P1
    name: Parade
    showTimes: ["14:00", "16:00"]
`

func TestStorageCatalog_PrefersJSON(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "parks", minio.ListObjectsOptions{Prefix: "catalog/shanghai/"}).
		Return(listing(
			minio.ObjectInfo{Key: "catalog/shanghai/catalog.yaml"},
			minio.ObjectInfo{Key: "catalog/shanghai/catalog.json"},
		))
	client.On("GetObject", mock.Anything, "parks", "catalog/shanghai/catalog.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"attractions":[{"id":"1","name":"A"}]}`)), nil)

	catalog := source.NewStorageCatalog(client, storage.Config{Bucket: "parks", CatalogPrefix: "/catalog/"})
	basic, err := catalog.FetchBasic(context.Background(), "shanghai")
	require.NoError(t, err)
	require.Len(t, basic.Attractions, 1)
	assert.Equal(t, "A", basic.Attractions[0].Name)
	client.AssertExpectations(t)
}

func TestStorageCatalog_YAML(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "parks", mock.Anything).
		Return(listing(minio.ObjectInfo{Key: "catalog/shanghai/catalog.yaml"}))
	client.On("GetObject", mock.Anything, "parks", "catalog/shanghai/catalog.yaml", mock.Anything).
		Return(io.NopCloser(strings.NewReader(yamlCatalog)), nil)

	catalog := source.NewStorageCatalog(client, storage.Config{Bucket: "parks", CatalogPrefix: "catalog"})
	basic, err := catalog.FetchBasic(context.Background(), "shanghai")
	require.NoError(t, err)

	require.Len(t, basic.Attractions, 1)
	assert.Equal(t, "101", basic.Attractions[0].ID)
	assert.Equal(t, 15, basic.Attractions[0].Wait)
	require.Len(t, basic.Performances, 1)
	assert.Equal(t, "16:00", basic.Performances[0].ShowTimes[1].Time)
}

func TestStorageCatalog_Errors(t *testing.T) {
	t.Run("missing catalog", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "parks", mock.Anything).
			Return(listing(minio.ObjectInfo{Key: "catalog/p/readme.txt"}))

		_, err := source.NewStorageCatalog(client, storage.Config{Bucket: "parks", CatalogPrefix: "catalog"}).
			FetchBasic(context.Background(), "p")
		assert.ErrorContains(t, err, "no catalog")
	})

	t.Run("listing error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "parks", mock.Anything).
			Return(listing(minio.ObjectInfo{Err: errors.New("access denied")}))

		_, err := source.NewStorageCatalog(client, storage.Config{Bucket: "parks"}).
			FetchBasic(context.Background(), "p")
		assert.ErrorContains(t, err, "access denied")
	})

	t.Run("get error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "parks", minio.ListObjectsOptions{Prefix: "p/"}).
			Return(listing(minio.ObjectInfo{Key: "p/catalog.json"}))
		client.On("GetObject", mock.Anything, "parks", "p/catalog.json", mock.Anything).
			Return(nil, errors.New("timeout"))

		_, err := source.NewStorageCatalog(client, storage.Config{Bucket: "parks"}).
			FetchBasic(context.Background(), "p")
		assert.ErrorContains(t, err, "timeout")
	})
}
