package source

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/minio/minio-go/v7"

	"park-sync/core/storage"
	"park-sync/feature/park/models"
)

// CatalogNames lists the catalog object names, in order of preference.
var CatalogNames = []string{"catalog.json", "catalog.yaml", "catalog.yml"}

// StorageCatalog reads basic data from per-park catalog objects in a bucket,
// stored at <prefix>/<parkId>/catalog.(json|yaml).
type StorageCatalog struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageCatalog creates a catalog reader over client.
func NewStorageCatalog(client storage.Client, cfg storage.Config) *StorageCatalog {
	return &StorageCatalog{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.CatalogPrefix, "/"),
	}
}

func (s *StorageCatalog) parkPrefix(parkID string) string {
	if s.prefix == "" {
		return parkID + "/"
	}
	return s.prefix + "/" + parkID + "/"
}

// locate returns the preferred catalog object for parkID.
func (s *StorageCatalog) locate(ctx context.Context, parkID string) (string, error) {
	prefix := s.parkPrefix(parkID)
	found := make(map[string]string)
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return "", fmt.Errorf("listing %s: %w", prefix, obj.Err)
		}
		found[path.Base(obj.Key)] = obj.Key
	}
	for _, name := range CatalogNames {
		if key, ok := found[name]; ok {
			return key, nil
		}
	}
	return "", fmt.Errorf("no catalog under %s/%s", s.bucket, prefix)
}

// FetchBasic implements BasicDataSource.
func (s *StorageCatalog) FetchBasic(ctx context.Context, parkID string) (models.BasicData, error) {
	key, err := s.locate(ctx, parkID)
	if err != nil {
		return models.BasicData{}, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return models.BasicData{}, fmt.Errorf("getting %s: %w", key, err)
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		return models.BasicData{}, fmt.Errorf("reading %s: %w", key, err)
	}

	if ext := path.Ext(key); ext == ".yaml" || ext == ".yml" {
		body, err = yaml.YAMLToJSON(body)
		if err != nil {
			return models.BasicData{}, fmt.Errorf("converting %s: %w", key, err)
		}
	}
	return decodeBasic(body)
}
