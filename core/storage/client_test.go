package storage_test

import (
	"testing"

	"teapot-fortune/core/storage"
	"teapot-fortune/core/storage/mocks"

	"github.com/stretchr/testify/assert"
)

// The snapshot fetcher only needs the trimmed client surface, which the mock must satisfy.
var _ storage.Client = (*mocks.Client)(nil)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     storage.Config
		wantErr bool
	}{
		{"Plain Endpoint", storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s"}, false},
		{"HTTP Scheme Stripped", storage.Config{Endpoint: "http://minio:9000", AccessKey: "k", SecretKey: "s"}, false},
		{"HTTPS With Region", storage.Config{Endpoint: "https://s3.amazonaws.com", UseSSL: true, Region: "us-east-1"}, false},
		{"Zero Timeout Defaults", storage.Config{Endpoint: "localhost:9000", TimeoutSeconds: 0}, false},
		{"Endpoint With Path", storage.Config{Endpoint: "localhost:9000/fortunes"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			if tt.wantErr {
				assert.ErrorContains(t, err, "failed to create minio client")
				assert.Nil(t, client)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
