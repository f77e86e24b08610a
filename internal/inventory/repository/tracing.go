package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/stockwatch/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// TracingItemRepository wraps any ItemRepository with OpenTelemetry spans
type TracingItemRepository struct {
	next   domain.ItemRepository
	driver string
}

// NewTracingItemRepository creates a new repository with tracing
func NewTracingItemRepository(next domain.ItemRepository, driver string) *TracingItemRepository {
	return &TracingItemRepository{next: next, driver: driver}
}

func (r *TracingItemRepository) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("db.system", r.driver))
	return tracer.Start(ctx, "repository."+op, trace.WithAttributes(attrs...))
}

func itemAttributes(item *domain.Item) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("item.id", item.ID),
		attribute.String("item.name", item.Name),
		attribute.Float64("item.current_stock", item.CurrentStock),
		attribute.Int("item.lead_time", item.LeadTime),
	}
}

// recordError marks the span failed, except for a plain miss or a duplicate id
func recordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, domain.ErrItemNotFound) {
		span.SetAttributes(attribute.Bool("item.found", false))
		return
	}
	if errors.Is(err, domain.ErrItemExists) {
		span.SetAttributes(attribute.Bool("item.exists", true))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func (r *TracingItemRepository) Create(ctx context.Context, item *domain.Item) error {
	ctx, span := r.start(ctx, "Create", itemAttributes(item)...)
	defer span.End()

	err := r.next.Create(ctx, item)
	recordError(span, err)
	return err
}

func (r *TracingItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	ctx, span := r.start(ctx, "FindByID", attribute.String("item.id", id))
	defer span.End()

	item, err := r.next.FindByID(ctx, id)
	recordError(span, err)
	return item, err
}

func (r *TracingItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	ctx, span := r.start(ctx, "FindAll")
	defer span.End()

	items, err := r.next.FindAll(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

func (r *TracingItemRepository) Update(ctx context.Context, item *domain.Item) error {
	ctx, span := r.start(ctx, "Update", itemAttributes(item)...)
	defer span.End()

	err := r.next.Update(ctx, item)
	recordError(span, err)
	return err
}

func (r *TracingItemRepository) Delete(ctx context.Context, id string) error {
	ctx, span := r.start(ctx, "Delete", attribute.String("item.id", id))
	defer span.End()

	err := r.next.Delete(ctx, id)
	recordError(span, err)
	return err
}

func (r *TracingItemRepository) Count(ctx context.Context) (int64, error) {
	ctx, span := r.start(ctx, "Count")
	defer span.End()

	n, err := r.next.Count(ctx)
	recordError(span, err)
	return n, err
}
