package storage

import (
	"context"
	"fmt"

	gcsapi "cloud.google.com/go/storage"

	"github.com/sarkarihub/govjobs/internal/storage/gcs"
	"github.com/sarkarihub/govjobs/internal/storage/local"
)

// NewProvider builds the blob store named by provider: "gcs", "local", or
// "noop".
func NewProvider(ctx context.Context, provider, gcsBucket, localDir string) (Provider, error) {
	switch provider {
	case "gcs":
		client, err := gcsapi.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("create gcs client: %w", err)
		}
		return gcs.New(client, gcs.Config{Bucket: gcsBucket})
	case "local":
		return local.New(local.Config{BaseDir: localDir})
	case "noop", "":
		return &NoOpProvider{}, nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", provider)
	}
}
