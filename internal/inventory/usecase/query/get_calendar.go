package query

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/internal/inventory/stock"
)

const monthLayout = "2006-01"

// GetCalendarQuery selects a month as YYYY-MM; empty means the current month
type GetCalendarQuery struct {
	Month string
}

// CalendarEntry is one item predicted to run out on a day
type CalendarEntry struct {
	ItemID string
	Name   string
	Status stock.Status
}

// CalendarDay groups the items running out on the same date
type CalendarDay struct {
	Date  time.Time
	Items []CalendarEntry
}

// Calendar lists predicted stock-out days within one month, earliest first
type Calendar struct {
	Month time.Time
	Days  []CalendarDay
}

// GetCalendarHandler handles the stock-out calendar query
type GetCalendarHandler struct {
	repo   domain.ItemRepository
	policy stock.Policy
	clock  stock.Clock
}

// NewGetCalendarHandler creates a new get calendar handler
func NewGetCalendarHandler(repo domain.ItemRepository, policy stock.Policy, clock stock.Clock) *GetCalendarHandler {
	return &GetCalendarHandler{repo: repo, policy: policy, clock: orSystem(clock)}
}

// Handle executes the calendar query
func (h *GetCalendarHandler) Handle(ctx context.Context, query GetCalendarQuery) (*Calendar, error) {
	today := h.clock()

	month := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	if query.Month != "" {
		parsed, err := time.ParseInLocation(monthLayout, query.Month, today.Location())
		if err != nil {
			return nil, &domain.ValidationError{Field: "month", Message: "must be formatted as YYYY-MM"}
		}
		month = parsed
	}
	next := month.AddDate(0, 1, 0)

	items, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	byDay := make(map[string]*CalendarDay)
	for _, item := range items {
		a := stock.Assess(item, h.policy, today)
		if a.PredictedEmptyDate == nil {
			continue
		}
		date := *a.PredictedEmptyDate
		if date.Before(month) || !date.Before(next) {
			continue
		}

		key := date.Format(time.DateOnly)
		day, ok := byDay[key]
		if !ok {
			day = &CalendarDay{Date: date}
			byDay[key] = day
		}
		day.Items = append(day.Items, CalendarEntry{
			ItemID: item.ID,
			Name:   item.Name,
			Status: a.Evaluation.Status,
		})
	}

	cal := &Calendar{Month: month, Days: make([]CalendarDay, 0, len(byDay))}
	for _, day := range byDay {
		cal.Days = append(cal.Days, *day)
	}
	sort.Slice(cal.Days, func(i, j int) bool {
		return cal.Days[i].Date.Before(cal.Days[j].Date)
	})

	return cal, nil
}
