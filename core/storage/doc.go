// Package storage wraps the MinIO/S3 client used to read park catalogs.
//
// Park catalogs (the "basic data" source: attraction and performance lists
// with their identities) can be published as objects under
// <catalog_prefix>/<parkId>/catalog.json or catalog.yaml. The Client interface
// exposes only the read operations the catalog source needs so that tests can
// substitute the testify mock in the mocks subpackage.
package storage
