package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/21in7/tos-fronet-sub000/internal/catalog"
	"github.com/21in7/tos-fronet-sub000/internal/config"
)

// LoadCatalog loads and validates the static catalog named by the configuration.
// Any schema or semantic problem fails start-up.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	slog.Info(LogMsgLoadingCatalog, "path", cfg.CatalogPath)

	cat, err := catalog.NewLoader().Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgCatalogReady,
		"version", cat.Version(),
		"checksum", cat.Checksum(),
		"options", len(cat.Options()),
		"exhibitions", len(cat.Exhibitions()),
		"reinforce_levels", cat.ReinforceLevels())

	return cat, nil
}
