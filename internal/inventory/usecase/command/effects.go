package command

import (
	"context"
	"errors"
	"time"

	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/internal/inventory/reorder"
	"github.com/tair/stockwatch/internal/inventory/stock"
	"github.com/tair/stockwatch/kafka"
	"github.com/tair/stockwatch/pkg/logger"
)

// AlertPublisher delivers reorder alerts to subscribers
type AlertPublisher interface {
	PublishReorderAlert(ctx context.Context, event kafka.ReorderAlertEvent) error
}

// CacheInvalidator drops derived views after a write
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// WriteEffects runs the side effects shared by every item write.
// Publisher and invalidator are optional; failures are logged, never returned.
type WriteEffects struct {
	publisher   AlertPublisher
	invalidator CacheInvalidator
	policy      stock.Policy
	clock       stock.Clock
	template    string
}

func NewWriteEffects(publisher AlertPublisher, invalidator CacheInvalidator, policy stock.Policy, clock stock.Clock, template string) *WriteEffects {
	if clock == nil {
		clock = stock.SystemClock
	}
	return &WriteEffects{
		publisher:   publisher,
		invalidator: invalidator,
		policy:      policy,
		clock:       clock,
		template:    template,
	}
}

func (e *WriteEffects) now() time.Time {
	if e == nil {
		return time.Now()
	}
	return e.clock()
}

func (e *WriteEffects) invalidate(ctx context.Context) {
	if e == nil || e.invalidator == nil {
		return
	}
	if err := e.invalidator.Invalidate(ctx); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to invalidate list cache")
	}
}

// afterWrite invalidates cached lists and raises an alert when the item needs reordering
func (e *WriteEffects) afterWrite(ctx context.Context, item domain.Item) {
	if e == nil {
		return
	}
	e.invalidate(ctx)

	if e.publisher == nil {
		return
	}

	assessed := stock.Assess(item, e.policy, e.clock())
	event, ok := reorderAlert(assessed, e.template)
	if !ok {
		return
	}

	if err := e.publisher.PublishReorderAlert(ctx, event); err != nil {
		logger.Error(ctx).Err(err).Str("item_id", item.ID).Msg("Failed to publish reorder alert")
	}
}

// reorderAlert builds the alert for items in WARNING or URGENT status
func reorderAlert(a stock.Assessed, template string) (kafka.ReorderAlertEvent, bool) {
	eval := a.Evaluation
	if eval.Status == stock.StatusSafe {
		return kafka.ReorderAlertEvent{}, false
	}

	event := kafka.ReorderAlertEvent{
		ItemID:             a.Item.ID,
		ItemName:           a.Item.Name,
		Unit:               a.Item.Unit,
		CurrentStock:       a.Item.CurrentStock,
		DailyRequirement:   eval.DailyRequirement,
		StockDurationDays:  eval.StockDurationDays,
		LeadTime:           a.Item.LeadTime,
		Status:             string(eval.Status),
		OrderInDays:        eval.OrderInDays,
		Recommendation:     eval.Recommendation,
		PredictedEmptyDate: a.PredictedEmptyDate,
	}

	link, err := reorder.BuildWhatsAppLink(a.Item, template)
	switch {
	case err == nil:
		event.SupplierWhatsapp = link.Phone
		event.ReorderURL = link.URL
	case errors.Is(err, reorder.ErrNoSupplierContact), errors.Is(err, reorder.ErrInvalidPhoneNumber):
	default:
		logger.Logger.Warn().Err(err).Str("item_id", a.Item.ID).Msg("Failed to build reorder link")
	}

	return event, true
}
