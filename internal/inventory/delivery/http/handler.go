package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/stockwatch/internal/inventory/cache"
	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/internal/inventory/reorder"
	"github.com/tair/stockwatch/internal/inventory/stock"
	"github.com/tair/stockwatch/internal/inventory/usecase/command"
	"github.com/tair/stockwatch/internal/inventory/usecase/query"
	"github.com/tair/stockwatch/pkg/logger"
)

// ListCache stores rendered list responses
type ListCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
}

// HealthChecker reports whether the storage backend is reachable
type HealthChecker func(ctx context.Context) error

// ItemHandler handles HTTP requests for items using CQRS pattern
type ItemHandler struct {
	// Command handlers
	createHandler *command.CreateItemHandler
	updateHandler *command.UpdateItemHandler
	deleteHandler *command.DeleteItemHandler

	// Query handlers
	getItemHandler *query.GetItemHandler
	listHandler    *query.ListItemsHandler
	statsHandler   *query.GetStatsHandler
	calendar       *query.GetCalendarHandler
	reorderLink    *query.GetReorderLinkHandler

	cache ListCache

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	itemsByStatus  *prometheus.GaugeVec
}

// NewItemHandler creates a new item handler. listCache may be nil.
// Metrics are registered on reg.
func NewItemHandler(
	createHandler *command.CreateItemHandler,
	updateHandler *command.UpdateItemHandler,
	deleteHandler *command.DeleteItemHandler,
	getItemHandler *query.GetItemHandler,
	listHandler *query.ListItemsHandler,
	statsHandler *query.GetStatsHandler,
	calendarHandler *query.GetCalendarHandler,
	reorderLinkHandler *query.GetReorderLinkHandler,
	listCache ListCache,
	reg prometheus.Registerer,
) *ItemHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockwatch_requests_total",
			Help: "Total number of requests to the stockwatch service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stockwatch_request_duration_seconds",
			Help:    "Duration of stockwatch requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	itemsByStatus := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stockwatch_items_by_status",
			Help: "Number of items per stock status at the last evaluation",
		},
		[]string{"status"},
	)

	if reg != nil {
		reg.MustRegister(requestCounter, requestLatency, itemsByStatus)
	}

	return &ItemHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		getItemHandler: getItemHandler,
		listHandler:    listHandler,
		statsHandler:   statsHandler,
		calendar:       calendarHandler,
		reorderLink:    reorderLinkHandler,
		cache:          listCache,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		itemsByStatus:  itemsByStatus,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *ItemHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all item routes. Fixed paths go before {id}.
func (h *ItemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/items", h.metricsMiddleware("/api/items", h.ListItems)).Methods("GET")
	router.HandleFunc("/api/items", h.metricsMiddleware("/api/items", h.CreateItem)).Methods("POST")
	router.HandleFunc("/api/items/stats", h.metricsMiddleware("/api/items/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/items/calendar", h.metricsMiddleware("/api/items/calendar", h.GetCalendar)).Methods("GET")
	router.HandleFunc("/api/items/{id}", h.metricsMiddleware("/api/items/{id}", h.GetItem)).Methods("GET")
	router.HandleFunc("/api/items/{id}", h.metricsMiddleware("/api/items/{id}", h.UpdateItem)).Methods("PUT")
	router.HandleFunc("/api/items/{id}", h.metricsMiddleware("/api/items/{id}", h.DeleteItem)).Methods("DELETE")
	router.HandleFunc("/api/items/{id}/reorder-link", h.metricsMiddleware("/api/items/{id}/reorder-link", h.GetReorderLink)).Methods("GET")
}

// RegisterHealthCheck registers health check endpoints
func (h *ItemHandler) RegisterHealthCheck(router *mux.Router, check HealthChecker) {
	health := func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r.Context()); err != nil {
				logger.Error(r.Context()).Err(err).Msg("Health check failed")
				respondJSON(w, http.StatusServiceUnavailable, Response{
					Success: false,
					Error:   "Storage unavailable",
				})
				return
			}
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Stockwatch service is healthy",
			Data:    map[string]string{"status": "ok"},
		})
	}

	router.HandleFunc("/api/health", health).Methods("GET")
	router.HandleFunc("/health", health).Methods("GET")
}

// ListItems handles GET /api/items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := r.URL.Query()

	q := query.ListItemsQuery{
		Search: params.Get("search"),
		Status: params.Get("status"),
		Sort:   params.Get("sort"),
		Today:  h.listHandler.Today(),
	}

	parsed, err := q.Parse()
	if err != nil {
		respondError(w, err)
		return
	}

	key := cache.Key(parsed, q.Today)
	if h.cache != nil {
		payload, ok, err := h.cache.Get(ctx, key)
		if err != nil {
			logger.Warn(ctx).Err(err).Msg("List cache read failed")
		}
		if ok {
			w.Header().Set("X-Cache", "HIT")
			respondRaw(w, http.StatusOK, payload)
			return
		}
	}

	res, err := h.listHandler.Handle(ctx, q)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to list items")
		respondError(w, err)
		return
	}

	payload, err := json.Marshal(Response{Success: true, Data: toListItemsResponse(res)})
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to encode item list")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to encode response"})
		return
	}

	h.refreshStatusGauge(ctx, res)

	if h.cache != nil {
		if err := h.cache.Set(ctx, key, payload); err != nil {
			logger.Warn(ctx).Err(err).Msg("List cache write failed")
		}
		w.Header().Set("X-Cache", "MISS")
	}
	respondRaw(w, http.StatusOK, payload)
}

// CreateItem handles POST /api/items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeItemRequest(w, r)
	if !ok {
		return
	}

	item, err := h.createHandler.Handle(r.Context(), command.CreateItemCommand{
		ID:         req.ID,
		ItemFields: req.fields(),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create item")
		respondError(w, err)
		return
	}

	h.updateStatusMetric(r.Context())

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Item created successfully",
		Data:    item,
	})
}

// GetItem handles GET /api/items/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	assessed, err := h.getItemHandler.Handle(r.Context(), query.GetItemQuery{ID: id})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    toAssessedItemResponse(*assessed),
	})
}

// UpdateItem handles PUT /api/items/{id}. The path id wins over any id in the body.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	req, ok := decodeItemRequest(w, r)
	if !ok {
		return
	}

	item, err := h.updateHandler.Handle(r.Context(), command.UpdateItemCommand{
		ID:         id,
		ItemFields: req.fields(),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("item_id", id).Msg("Failed to update item")
		respondError(w, err)
		return
	}

	h.updateStatusMetric(r.Context())

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item updated successfully",
		Data:    item,
	})
}

// DeleteItem handles DELETE /api/items/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteItemCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Str("item_id", id).Msg("Failed to delete item")
		respondError(w, err)
		return
	}

	h.updateStatusMetric(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// GetStats handles GET /api/items/stats
func (h *ItemHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get statistics",
		})
		return
	}

	h.setStatusGauge(stats)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: StatsResponse{
			Total:        stats.Total,
			ByStatus:     stats.ByStatus,
			NeedsReorder: stats.NeedsReorder,
		},
	})
}

// GetCalendar handles GET /api/items/calendar?month=YYYY-MM
func (h *ItemHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	cal, err := h.calendar.Handle(r.Context(), query.GetCalendarQuery{Month: r.URL.Query().Get("month")})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    toCalendarResponse(cal),
	})
}

// GetReorderLink handles GET /api/items/{id}/reorder-link
func (h *ItemHandler) GetReorderLink(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	link, err := h.reorderLink.Handle(r.Context(), query.GetReorderLinkQuery{ID: id})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    link,
	})
}

func (h *ItemHandler) updateStatusMetric(ctx context.Context) {
	stats, err := h.statsHandler.Handle(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to refresh status metric")
		return
	}
	h.setStatusGauge(stats)
}

// refreshStatusGauge reuses an unfiltered list evaluation and falls back to the stats query otherwise
func (h *ItemHandler) refreshStatusGauge(ctx context.Context, res *query.ListItemsResult) {
	if res.Query.Search == "" && res.Query.Status == stock.FilterAll {
		h.setStatusGauge(&query.Stats{ByStatus: stock.CountByStatus(res.Items)})
		return
	}
	h.updateStatusMetric(ctx)
}

func (h *ItemHandler) setStatusGauge(stats *query.Stats) {
	for status, n := range stats.ByStatus {
		h.itemsByStatus.WithLabelValues(string(status)).Set(float64(n))
	}
}

func decodeItemRequest(w http.ResponseWriter, r *http.Request) (ItemRequest, bool) {
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return req, false
	}

	if field := req.missingField(); field != "" {
		respondError(w, &domain.ValidationError{Field: field, Message: "is required"})
		return req, false
	}
	return req, true
}

// respondError maps use case errors to HTTP status codes
func respondError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError

	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.As(err, &verr):
		status, message = http.StatusBadRequest, verr.Error()
	case errors.Is(err, stock.ErrInvalidSortOption), errors.Is(err, stock.ErrInvalidStatusFilter):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrItemNotFound):
		status, message = http.StatusNotFound, "Item not found"
	case errors.Is(err, domain.ErrItemExists):
		status, message = http.StatusConflict, "Item already exists"
	case errors.Is(err, reorder.ErrNoSupplierContact), errors.Is(err, reorder.ErrInvalidPhoneNumber):
		status, message = http.StatusUnprocessableEntity, err.Error()
	}

	respondJSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondRaw(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
