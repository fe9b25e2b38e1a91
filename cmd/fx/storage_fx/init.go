package storage_fx

import (
	"go.uber.org/fx"

	"adsouq/pkg/config"
	"adsouq/pkg/storage"
)

var Module = fx.Provide(
	provideBlobStore)

func provideBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	return storage.NewLocalStore(cfg.Uploads.Dir)
}
