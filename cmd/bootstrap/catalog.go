package bootstrap

import (
	"log/slog"

	"rental-booking/internal/domain/offer"
	"rental-booking/internal/infra/catalog"
	"rental-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalog,
	),
)

func NewCatalog(cfg config.Config, logger *slog.Logger) ([]offer.Offer, error) {
	offers, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded", "path", cfg.Catalog.Path, "offers", len(offers))
	return offers, nil
}
