package http

import (
	"time"

	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/internal/inventory/stock"
	"github.com/tair/stockwatch/internal/inventory/usecase/command"
	"github.com/tair/stockwatch/internal/inventory/usecase/query"
)

const dateLayout = "2006-01-02"

// ItemRequest is the body of create and update requests
type ItemRequest struct {
	ID                   string   `json:"id,omitempty"`
	Name                 string   `json:"name"`
	Unit                 string   `json:"unit"`
	CurrentStock         *float64 `json:"currentStock"`
	RequirementPerRecipe *float64 `json:"requirementPerRecipe"`
	RecipesToday         *int     `json:"recipesToday"`
	LeadTime             *int     `json:"leadTime"`
	SupplierWhatsapp     *string  `json:"supplierWhatsapp,omitempty"`
}

// missingField names the first numeric field left out of the body
func (r ItemRequest) missingField() string {
	switch {
	case r.CurrentStock == nil:
		return "currentStock"
	case r.RequirementPerRecipe == nil:
		return "requirementPerRecipe"
	case r.RecipesToday == nil:
		return "recipesToday"
	case r.LeadTime == nil:
		return "leadTime"
	}
	return ""
}

func (r ItemRequest) fields() command.ItemFields {
	return command.ItemFields{
		Name:                 r.Name,
		Unit:                 r.Unit,
		CurrentStock:         *r.CurrentStock,
		RequirementPerRecipe: *r.RequirementPerRecipe,
		RecipesToday:         *r.RecipesToday,
		LeadTime:             *r.LeadTime,
		SupplierWhatsapp:     r.SupplierWhatsapp,
	}
}

// EvaluationResponse is the JSON form of an evaluation.
// StockDurationDays is null when the item is not consumed.
type EvaluationResponse struct {
	DailyRequirement  float64      `json:"dailyRequirement"`
	StockDurationDays *float64     `json:"stockDurationDays"`
	Status            stock.Status `json:"status"`
	Recommendation    string       `json:"recommendation"`
	OrderInDays       int          `json:"orderInDays"`
}

// AssessedItemResponse pairs an item with its evaluation
type AssessedItemResponse struct {
	Item               domain.Item        `json:"item"`
	Evaluation         EvaluationResponse `json:"evaluation"`
	PredictedEmptyDate *string            `json:"predictedEmptyDate"`
}

// ListItemsResponse is the payload of GET /api/items
type ListItemsResponse struct {
	Items         []AssessedItemResponse `json:"items"`
	TotalCount    int                    `json:"totalCount"`
	FilteredCount int                    `json:"filteredCount"`
	Search        string                 `json:"search"`
	Status        stock.StatusFilter     `json:"status"`
	Sort          stock.SortOption       `json:"sort"`
	Date          string                 `json:"date"`
}

// StatsResponse is the payload of GET /api/items/stats
type StatsResponse struct {
	Total        int                  `json:"total"`
	ByStatus     map[stock.Status]int `json:"byStatus"`
	NeedsReorder int                  `json:"needsReorder"`
}

// CalendarEntryResponse is one item on a calendar day
type CalendarEntryResponse struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Status stock.Status `json:"status"`
}

// CalendarDayResponse groups the items running out on one date
type CalendarDayResponse struct {
	Date  string                  `json:"date"`
	Items []CalendarEntryResponse `json:"items"`
}

// CalendarResponse is the payload of GET /api/items/calendar
type CalendarResponse struct {
	Month string                `json:"month"`
	Days  []CalendarDayResponse `json:"days"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toEvaluationResponse(e stock.Evaluation) EvaluationResponse {
	resp := EvaluationResponse{
		DailyRequirement: e.DailyRequirement,
		Status:           e.Status,
		Recommendation:   e.Recommendation,
		OrderInDays:      e.OrderInDays,
	}
	if e.DurationBounded() {
		d := e.StockDurationDays
		resp.StockDurationDays = &d
	}
	return resp
}

func toAssessedItemResponse(a stock.Assessed) AssessedItemResponse {
	return AssessedItemResponse{
		Item:               a.Item,
		Evaluation:         toEvaluationResponse(a.Evaluation),
		PredictedEmptyDate: formatDate(a.PredictedEmptyDate),
	}
}

func toListItemsResponse(res *query.ListItemsResult) ListItemsResponse {
	items := make([]AssessedItemResponse, 0, len(res.Items))
	for _, a := range res.Items {
		items = append(items, toAssessedItemResponse(a))
	}
	return ListItemsResponse{
		Items:         items,
		TotalCount:    res.TotalCount,
		FilteredCount: len(res.Items),
		Search:        res.Query.Search,
		Status:        res.Query.Status,
		Sort:          res.Query.Sort,
		Date:          res.Today.Format(dateLayout),
	}
}

func toCalendarResponse(cal *query.Calendar) CalendarResponse {
	days := make([]CalendarDayResponse, 0, len(cal.Days))
	for _, day := range cal.Days {
		entries := make([]CalendarEntryResponse, 0, len(day.Items))
		for _, e := range day.Items {
			entries = append(entries, CalendarEntryResponse{ID: e.ItemID, Name: e.Name, Status: e.Status})
		}
		days = append(days, CalendarDayResponse{Date: day.Date.Format(dateLayout), Items: entries})
	}
	return CalendarResponse{Month: cal.Month.Format("2006-01"), Days: days}
}
