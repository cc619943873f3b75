package checks

import (
	"context"
	"errors"
	"testing"

	"park-sync/core/storage"
	"park-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func objects(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestCheckCatalog(t *testing.T) {
	cfg := storage.Config{Bucket: "parks", CatalogPrefix: "/catalogs/"}

	t.Run("Found", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "parks").Return(true, nil)
		client.On("ListObjects", mock.Anything, "parks", mock.MatchedBy(func(o minio.ListObjectsOptions) bool {
			return o.Prefix == "catalogs/shanghai/"
		})).Return(objects("catalogs/shanghai/catalog.yaml", "catalogs/shanghai/catalog.json", "catalogs/shanghai/logo.png"))

		report, err := CheckCatalog(context.Background(), client, cfg, "shanghai")
		require.NoError(t, err)
		assert.Equal(t, "ok", report.Status)
		assert.Equal(t, "catalogs/shanghai/catalog.json", report.Object)
		assert.Equal(t, []string{"catalogs/shanghai/catalog.yaml"}, report.Extra)
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "parks").Return(true, nil)
		client.On("ListObjects", mock.Anything, "parks", mock.Anything).Return(objects("catalogs/tokyo/readme.txt"))

		report, err := CheckCatalog(context.Background(), client, cfg, "tokyo")
		require.NoError(t, err)
		assert.Equal(t, "missing", report.Status)
		assert.Empty(t, report.Object)
	})

	t.Run("NoBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "parks").Return(false, nil)

		_, err := CheckCatalog(context.Background(), client, cfg, "tokyo")
		assert.EqualError(t, err, "bucket parks does not exist")
		client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("BucketError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "parks").Return(false, errors.New("connection refused"))

		_, err := CheckCatalog(context.Background(), client, cfg, "tokyo")
		assert.ErrorContains(t, err, "connection refused")
	})
}
