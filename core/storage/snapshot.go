package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
)

// ErrInvalidURI is returned for snapshot URIs that are not s3://bucket/key.
var ErrInvalidURI = errors.New("invalid snapshot uri")

// ParseURI splits an s3://bucket/key URI into bucket and object name.
func ParseURI(raw string) (bucket, object string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidURI, raw)
	}
	object = strings.TrimPrefix(u.Path, "/")
	if object == "" || strings.HasSuffix(object, "/") {
		return "", "", fmt.Errorf("%w: %q has no object key", ErrInvalidURI, raw)
	}
	return u.Host, object, nil
}

// FetchSnapshot downloads the object named by uri into cacheDir and returns the local path.
// The file is written to a temporary name and renamed, so a partial download never
// replaces a previous snapshot.
func FetchSnapshot(ctx context.Context, client Client, uri, cacheDir string) (string, error) {
	bucket, object, err := ParseURI(uri)
	if err != nil {
		return "", err
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket %q: %w", bucket, err)
	}
	if !exists {
		return "", fmt.Errorf("bucket %q does not exist", bucket)
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create cache dir: %w", err)
	}

	obj, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to get %s/%s: %w", bucket, object, err)
	}
	defer obj.Close()

	dest := filepath.Join(cacheDir, path.Base(object))
	tmp, err := os.CreateTemp(cacheDir, path.Base(object)+".*.part")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, obj); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to download %s/%s: %w", bucket, object, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to flush snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("failed to move snapshot into place: %w", err)
	}

	return dest, nil
}
