// Package storage fetches database snapshots from object storage.
//
// It wraps the MinIO Go client, which speaks to both AWS S3 and self-hosted MinIO.
// When DATABASE_URL is an s3://bucket/key URI, FetchSnapshot downloads the sqlite
// file into the local cache directory once at startup and the service then opens
// that local copy read-only.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider so snapshot
// fetching can be tested with the mock in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	path, err := storage.FetchSnapshot(ctx, client, "s3://fortunes/copypastas.sqlite", cfg.Storage.CacheDir)
package storage
