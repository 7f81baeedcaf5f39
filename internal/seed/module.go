package seed

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/config"
)

// Module provides the initial dataset selected by configuration.
var Module = fx.Provide(NewFromConfig)

// NewFromConfig loads the seed file named in cfg, falling back to the embedded fixture.
func NewFromConfig(cfg *config.Config, log *slog.Logger) (*Seed, error) {
	s, err := Load(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	source := cfg.SeedFile
	if source == "" {
		source = "embedded"
	}
	log.Info("seed loaded",
		slog.String("source", source),
		slog.Int("orders", len(s.Orders)),
		slog.Int("affiliates", len(s.Affiliates)),
		slog.Int("coupons", len(s.Coupons)),
		slog.Int("products", len(s.Products)),
		slog.Int("users", len(s.Users)),
	)
	return s, nil
}
