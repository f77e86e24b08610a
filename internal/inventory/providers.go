package inventory

import (
	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/internal/inventory/stock"
	"github.com/tair/stockwatch/internal/inventory/usecase/command"
	"github.com/tair/stockwatch/internal/inventory/usecase/query"
	"github.com/tair/stockwatch/pkg/config"
)

// ProvidePolicy builds the evaluation policy from configuration
func ProvidePolicy(cfg *config.Config) stock.Policy {
	return stock.Policy{SafetyMarginDays: cfg.Stock.SafetyMarginDays}
}

// ProvideClock provides the wall clock used to evaluate items
func ProvideClock() stock.Clock {
	return stock.SystemClock
}

// ProvideWriteEffects provides the side effects shared by item writes
func ProvideWriteEffects(
	publisher command.AlertPublisher,
	invalidator command.CacheInvalidator,
	cfg *config.Config,
	policy stock.Policy,
	clock stock.Clock,
) *command.WriteEffects {
	return command.NewWriteEffects(publisher, invalidator, policy, clock, cfg.Reorder.MessageTemplate)
}

// ProvideReorderLinkHandler provides the reorder link query with the configured template
func ProvideReorderLinkHandler(repo domain.ItemRepository, cfg *config.Config) *query.GetReorderLinkHandler {
	return query.NewGetReorderLinkHandler(repo, cfg.Reorder.MessageTemplate)
}
