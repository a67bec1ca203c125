package bootstrap

import (
	"parkgate/internal/pkg/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewObjectStorage,
	),
)

// NewObjectStorage returns nil when no endpoint is configured; the logo store
// treats a nil client as "no branding" and the rest of the flow is unaffected.
func NewObjectStorage(cfg config.Config) (*minio.Client, error) {
	if !cfg.Storage.Configured() {
		return nil, nil
	}

	return minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseTLS,
	})
}
