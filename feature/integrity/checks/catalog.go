package checks

import (
	"context"
	"fmt"
	"path"
	"strings"

	"park-sync/core/storage"
	"park-sync/feature/park/source"

	"github.com/minio/minio-go/v7"
)

// CatalogReport describes the catalog object found for one park.
type CatalogReport struct {
	Park   string   `json:"park_id"`
	Prefix string   `json:"prefix"`
	Object string   `json:"object,omitempty"`
	Extra  []string `json:"shadowed,omitempty"`
	Status string   `json:"status"` // "ok", "missing"
}

// CheckCatalog looks for the park's catalog object in the bucket. A park
// with several catalog formats reports the ones the reader would ignore.
func CheckCatalog(ctx context.Context, client storage.Client, cfg storage.Config, park string) (*CatalogReport, error) {
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", cfg.Bucket)
	}

	prefix := park + "/"
	if p := strings.Trim(cfg.CatalogPrefix, "/"); p != "" {
		prefix = p + "/" + prefix
	}

	found := make(map[string]string)
	for obj := range client.ListObjects(ctx, cfg.Bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("listing %s: %w", prefix, obj.Err)
		}
		found[path.Base(obj.Key)] = obj.Key
	}

	report := &CatalogReport{Park: park, Prefix: prefix, Status: "missing"}
	for _, name := range source.CatalogNames {
		key, ok := found[name]
		if !ok {
			continue
		}
		if report.Object == "" {
			report.Object = key
			report.Status = "ok"
			continue
		}
		report.Extra = append(report.Extra, key)
	}
	return report, nil
}
