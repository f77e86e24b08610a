package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the stockwatch service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListItems godoc
// @Summary List evaluated items
// @Description Evaluate every item for today, then apply search, status filter and sort in that order
// @Tags Items
// @Produce json
// @Param search query string false "Case-insensitive substring of the item name"
// @Param status query string false "ALL, SAFE, WARNING or URGENT" default(ALL)
// @Param sort query string false "default, stock_asc, stock_desc, duration_asc, duration_desc, lead_time_asc, lead_time_desc" default(default)
// @Success 200 {object} object{success=bool,data=ListItemsResponse}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/items [get]
func (h *ItemHandler) ListItemsDoc() {}

// CreateItem godoc
// @Summary Create item
// @Description Create a new inventory item; an id is generated when omitted
// @Tags Items
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Item data"
// @Success 201 {object} object{success=bool,message=string,data=domain.Item}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/items [post]
func (h *ItemHandler) CreateItemDoc() {}

// GetItem godoc
// @Summary Get item by ID
// @Description Get one item together with its evaluation and predicted empty date
// @Tags Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} object{success=bool,data=AssessedItemResponse}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/items/{id} [get]
func (h *ItemHandler) GetItemDoc() {}

// UpdateItem godoc
// @Summary Update item
// @Description Replace the editable fields of an item; the path id is authoritative
// @Tags Items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body ItemRequest true "Item data"
// @Success 200 {object} object{success=bool,message=string,data=domain.Item}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/items/{id} [put]
func (h *ItemHandler) UpdateItemDoc() {}

// DeleteItem godoc
// @Summary Delete item
// @Tags Items
// @Param id path string true "Item ID"
// @Success 204
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/items/{id} [delete]
func (h *ItemHandler) DeleteItemDoc() {}

// GetStats godoc
// @Summary Inventory statistics
// @Description Count items per stock status
// @Tags Items
// @Produce json
// @Success 200 {object} object{success=bool,data=StatsResponse}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/items/stats [get]
func (h *ItemHandler) GetStatsDoc() {}

// GetCalendar godoc
// @Summary Stock-out calendar
// @Description Predicted empty dates grouped per day for one month
// @Tags Items
// @Produce json
// @Param month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {object} object{success=bool,data=CalendarResponse}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/items/calendar [get]
func (h *ItemHandler) GetCalendarDoc() {}

// GetReorderLink godoc
// @Summary Supplier reorder link
// @Description Build a WhatsApp link carrying a reorder message for the item's supplier
// @Tags Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} object{success=bool,data=reorder.Link}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 422 {object} object{success=bool,error=string}
// @Router /api/items/{id}/reorder-link [get]
func (h *ItemHandler) GetReorderLinkDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and storage connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /api/health [get]
func (h *ItemHandler) HealthCheckDoc() {}
