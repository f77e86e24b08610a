package stock

import (
	"fmt"
	"math"
	"time"

	"github.com/tair/stockwatch/internal/inventory/domain"
)

// Status is the reorder classification of a single item
type Status string

const (
	StatusSafe    Status = "SAFE"
	StatusWarning Status = "WARNING"
	StatusUrgent  Status = "URGENT"
)

// DefaultSafetyMarginDays is the number of days of stock kept on top of the
// supplier lead time before an item is flagged for ordering.
const DefaultSafetyMarginDays = 2

// MaxForecastDays bounds every day count derived from a stock duration.
// Longer durations saturate OrderInDays and have no predicted empty date.
const MaxForecastDays = 1_000_000

// Policy holds the tunable business constants used by the evaluator
type Policy struct {
	SafetyMarginDays int
}

// DefaultPolicy returns the policy with the standard two-day safety margin
func DefaultPolicy() Policy {
	return Policy{SafetyMarginDays: DefaultSafetyMarginDays}
}

// Evaluation is the computed stock outlook of one item
type Evaluation struct {
	DailyRequirement  float64
	StockDurationDays float64
	Status            Status
	Recommendation    string
	// OrderInDays is floor(duration - leadTime); zero for URGENT and unused items.
	OrderInDays int
}

// HasUsage reports whether the item is consumed at all
func (e Evaluation) HasUsage() bool {
	return e.DailyRequirement > 0
}

// DurationBounded reports whether the stock duration is finite
func (e Evaluation) DurationBounded() bool {
	return !math.IsInf(e.StockDurationDays, 1)
}

// DailyRequirement returns requirementPerRecipe × recipesToday
func DailyRequirement(item domain.Item) float64 {
	return item.RequirementPerRecipe * float64(item.RecipesToday)
}

// StockDuration returns how many days the current stock lasts, or +Inf when
// nothing is consumed.
func StockDuration(item domain.Item) float64 {
	daily := DailyRequirement(item)
	if daily > 0 {
		return item.CurrentStock / daily
	}
	return math.Inf(1)
}

// Evaluate classifies an item and builds its reorder recommendation.
// Inputs must satisfy the domain.Item invariants; the result is undefined otherwise.
func Evaluate(item domain.Item, policy Policy) Evaluation {
	daily := DailyRequirement(item)

	// Zero consumption is never urgent, whatever the stock or lead time.
	if daily == 0 {
		return Evaluation{
			DailyRequirement:  0,
			StockDurationDays: math.Inf(1),
			Status:            StatusSafe,
			Recommendation:    "No daily usage, stock is safe.",
		}
	}

	duration := item.CurrentStock / daily
	leadTime := float64(item.LeadTime)
	reorderPoint := leadTime + float64(policy.SafetyMarginDays)

	eval := Evaluation{
		DailyRequirement:  daily,
		StockDurationDays: duration,
	}

	switch {
	case duration <= leadTime:
		eval.Status = StatusUrgent
		eval.Recommendation = "Reorder now! Stock will run out before a new order can arrive."
	case duration <= reorderPoint:
		eval.Status = StatusWarning
		eval.OrderInDays = orderInDays(duration, leadTime)
		eval.Recommendation = fmt.Sprintf("Time to order. Order within the next %d days.", eval.OrderInDays)
	default:
		eval.Status = StatusSafe
		eval.OrderInDays = orderInDays(duration, leadTime)
		eval.Recommendation = fmt.Sprintf("Stock is sufficient. The ideal time to order is in %d days.", eval.OrderInDays)
	}

	return eval
}

func orderInDays(duration, leadTime float64) int {
	days := math.Floor(duration - leadTime)
	if days > MaxForecastDays {
		return MaxForecastDays
	}
	return int(days)
}

// PredictedEmptyDate returns the calendar date on which the stock runs out,
// counted in whole days from today. It reports false when the item is not consumed
// or the duration exceeds MaxForecastDays.
func PredictedEmptyDate(item domain.Item, today time.Time) (time.Time, bool) {
	daily := DailyRequirement(item)
	if daily <= 0 {
		return time.Time{}, false
	}

	duration := item.CurrentStock / daily
	if math.IsNaN(duration) || duration > MaxForecastDays {
		return time.Time{}, false
	}

	return AddDays(today, int(math.Floor(duration))), true
}

// AddDays moves to midnight of the date n calendar days after t, in t's location.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}

// Assessed pairs an item with its evaluation for one pass
type Assessed struct {
	Item               domain.Item
	Evaluation         Evaluation
	PredictedEmptyDate *time.Time
}

// Assess evaluates an item and resolves its predicted empty date against today
func Assess(item domain.Item, policy Policy, today time.Time) Assessed {
	a := Assessed{
		Item:       item,
		Evaluation: Evaluate(item, policy),
	}
	if date, ok := PredictedEmptyDate(item, today); ok {
		a.PredictedEmptyDate = &date
	}
	return a
}
