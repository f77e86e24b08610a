//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/stockwatch/internal/inventory/delivery/http"
	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/internal/inventory/usecase/command"
	"github.com/tair/stockwatch/internal/inventory/usecase/query"
	"github.com/tair/stockwatch/pkg/config"
)

// Wire sets
var PolicySet = wire.NewSet(
	ProvidePolicy,
	ProvideClock,
)

var CommandSet = wire.NewSet(
	ProvideWriteEffects,
	command.NewCreateItemHandler,
	command.NewUpdateItemHandler,
	command.NewDeleteItemHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetItemHandler,
	query.NewListItemsHandler,
	query.NewGetStatsHandler,
	query.NewGetCalendarHandler,
	ProvideReorderLinkHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(
	repo domain.ItemRepository,
	cfg *config.Config,
	publisher command.AlertPublisher,
	invalidator command.CacheInvalidator,
	listCache http.ListCache,
	reg prometheus.Registerer,
) (*http.ItemHandler, error) {
	wire.Build(
		PolicySet,
		CommandSet,
		QuerySet,
		http.NewItemHandler,
	)
	return nil, nil
}

// InitializeListItemsHandler initializes the list query used by the CLI report
func InitializeListItemsHandler(repo domain.ItemRepository, cfg *config.Config) (*query.ListItemsHandler, error) {
	wire.Build(
		PolicySet,
		query.NewListItemsHandler,
	)
	return nil, nil
}
