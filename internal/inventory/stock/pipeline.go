package stock

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tair/stockwatch/internal/inventory/domain"
)

var (
	ErrInvalidSortOption   = errors.New("invalid sort option")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
)

// SortOption selects the single ordering criterion of a list
type SortOption string

const (
	SortDefault      SortOption = "default"
	SortStockAsc     SortOption = "stock_asc"
	SortStockDesc    SortOption = "stock_desc"
	SortDurationAsc  SortOption = "duration_asc"
	SortDurationDesc SortOption = "duration_desc"
	SortLeadTimeAsc  SortOption = "lead_time_asc"
	SortLeadTimeDesc SortOption = "lead_time_desc"
)

// SortOptions lists every supported ordering
var SortOptions = []SortOption{
	SortDefault,
	SortStockAsc,
	SortStockDesc,
	SortDurationAsc,
	SortDurationDesc,
	SortLeadTimeAsc,
	SortLeadTimeDesc,
}

// ParseSortOption validates a sort option; an empty string means default
func ParseSortOption(s string) (SortOption, error) {
	if s == "" {
		return SortDefault, nil
	}
	for _, opt := range SortOptions {
		if string(opt) == s {
			return opt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortOption, s)
}

// StatusFilter restricts a list to one status, or keeps everything with ALL
type StatusFilter string

const FilterAll StatusFilter = "ALL"

// ParseStatusFilter validates a status filter; an empty string means ALL
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch up := strings.ToUpper(s); up {
	case "", string(FilterAll):
		return FilterAll, nil
	case string(StatusSafe), string(StatusWarning), string(StatusUrgent):
		return StatusFilter(up), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatusFilter, s)
	}
}

// Query holds the presentation parameters of one list request
type Query struct {
	Search string
	Status StatusFilter
	Sort   SortOption
}

// Result is the filtered and ordered list together with the unfiltered count
type Result struct {
	Items      []Assessed
	TotalCount int
}

// IsInventoryEmpty reports whether there were no items at all
func (r Result) IsInventoryEmpty() bool {
	return r.TotalCount == 0
}

// NoMatches reports whether items exist but none survived the filters
func (r Result) NoMatches() bool {
	return r.TotalCount > 0 && len(r.Items) == 0
}

// Apply runs search, status filter and sort, in that order, over items.
// The input slice is left untouched and every item is evaluated against the same today.
func Apply(items []domain.Item, q Query, policy Policy, today time.Time) Result {
	assessed := make([]Assessed, 0, len(items))
	for _, item := range items {
		assessed = append(assessed, Assess(item, policy, today))
	}

	filtered := Search(assessed, q.Search)
	filtered = FilterByStatus(filtered, q.Status)
	SortAssessed(filtered, q.Sort)

	return Result{
		Items:      filtered,
		TotalCount: len(items),
	}
}

// Search keeps items whose name contains text, ignoring case
func Search(items []Assessed, text string) []Assessed {
	if text == "" {
		return append([]Assessed(nil), items...)
	}

	needle := strings.ToLower(text)
	out := make([]Assessed, 0, len(items))
	for _, a := range items {
		if strings.Contains(strings.ToLower(a.Item.Name), needle) {
			out = append(out, a)
		}
	}
	return out
}

// FilterByStatus keeps items with the given status; ALL and empty keep everything
func FilterByStatus(items []Assessed, filter StatusFilter) []Assessed {
	if filter == "" || filter == FilterAll {
		return append([]Assessed(nil), items...)
	}

	out := make([]Assessed, 0, len(items))
	for _, a := range items {
		if StatusFilter(a.Evaluation.Status) == filter {
			out = append(out, a)
		}
	}
	return out
}

// SortAssessed stable-sorts items in place by one criterion.
// SortDefault and unknown options leave the order unchanged.
func SortAssessed(items []Assessed, opt SortOption) {
	var less func(a, b Assessed) bool

	switch opt {
	case SortStockAsc:
		less = func(a, b Assessed) bool { return a.Item.CurrentStock < b.Item.CurrentStock }
	case SortStockDesc:
		less = func(a, b Assessed) bool { return a.Item.CurrentStock > b.Item.CurrentStock }
	case SortDurationAsc:
		// +Inf compares greater than every finite duration, so unused items sink to the end
		less = func(a, b Assessed) bool {
			return a.Evaluation.StockDurationDays < b.Evaluation.StockDurationDays
		}
	case SortDurationDesc:
		less = func(a, b Assessed) bool {
			return a.Evaluation.StockDurationDays > b.Evaluation.StockDurationDays
		}
	case SortLeadTimeAsc:
		less = func(a, b Assessed) bool { return a.Item.LeadTime < b.Item.LeadTime }
	case SortLeadTimeDesc:
		less = func(a, b Assessed) bool { return a.Item.LeadTime > b.Item.LeadTime }
	default:
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}

// CountByStatus tallies evaluations per status
func CountByStatus(items []Assessed) map[Status]int {
	counts := map[Status]int{
		StatusSafe:    0,
		StatusWarning: 0,
		StatusUrgent:  0,
	}
	for _, a := range items {
		counts[a.Evaluation.Status]++
	}
	return counts
}

// Clock supplies "now" to handlers that evaluate items
type Clock func() time.Time

// SystemClock reads the local wall clock
func SystemClock() time.Time {
	return time.Now()
}
