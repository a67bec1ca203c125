package gateway

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"

	"parkgate/internal/pkg/config"
	"parkgate/internal/pkg/errs"
)

// MinioLogoStore fetches the email branding image from object storage.
// Failures here only degrade the email (no logo), so callers treat errors
// as advisory.
type MinioLogoStore struct {
	client *minio.Client
	bucket string
	key    string
}

func NewMinioLogoStore(client *minio.Client, cfg config.Config) *MinioLogoStore {
	return &MinioLogoStore{
		client: client,
		bucket: cfg.Storage.Bucket,
		key:    cfg.Storage.LogoKey,
	}
}

func (s *MinioLogoStore) FetchLogo(ctx context.Context) ([]byte, error) {
	if s.client == nil {
		return nil, errs.New("object storage not configured")
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch logo object")
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read logo object")
	}
	return data, nil
}
