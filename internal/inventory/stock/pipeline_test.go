package stock

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/stockwatch/internal/inventory/domain"
)

var pipelineToday = time.Date(2025, 9, 16, 9, 0, 0, 0, time.UTC)

// sampleItems mirrors the seed data plus an unused item
func sampleItems() []domain.Item {
	return []domain.Item{
		{ID: "1", Name: "Tepung Terigu", Unit: "kg", CurrentStock: 50, RequirementPerRecipe: 0.5, RecipesToday: 20, LeadTime: 3},
		{ID: "2", Name: "Gula Pasir", Unit: "kg", CurrentStock: 20, RequirementPerRecipe: 0.2, RecipesToday: 20, LeadTime: 2},
		{ID: "3", Name: "Kotak Kemasan", Unit: "pcs", CurrentStock: 200, RequirementPerRecipe: 1, RecipesToday: 80, LeadTime: 5},
		{ID: "4", Name: "Mentega", Unit: "kg", CurrentStock: 5, RequirementPerRecipe: 0.1, RecipesToday: 20, LeadTime: 1},
		{ID: "5", Name: "Tepung Maizena", Unit: "kg", CurrentStock: 8, RequirementPerRecipe: 0.3, RecipesToday: 0, LeadTime: 4},
	}
}

func ids(items []Assessed) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.Item.ID)
	}
	return out
}

func TestApply_DefaultKeepsInputOrder(t *testing.T) {
	res := Apply(sampleItems(), Query{}, DefaultPolicy(), pipelineToday)

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(res.Items))
	assert.Equal(t, 5, res.TotalCount)
	assert.False(t, res.IsInventoryEmpty())
	assert.False(t, res.NoMatches())
}

func TestApply_Search(t *testing.T) {
	upper := Apply(sampleItems(), Query{Search: "TEPUNG"}, DefaultPolicy(), pipelineToday)
	lower := Apply(sampleItems(), Query{Search: "tepung"}, DefaultPolicy(), pipelineToday)

	assert.Equal(t, []string{"1", "5"}, ids(upper.Items))
	assert.Equal(t, ids(upper.Items), ids(lower.Items))
	assert.Equal(t, 5, upper.TotalCount)
}

func TestApply_StatusFilter(t *testing.T) {
	tests := []struct {
		filter StatusFilter
		want   []string
	}{
		// 1: 5 days lead 3 -> warning; 2: 5 days lead 2 -> safe; 3: 2.5 days lead 5 -> urgent;
		// 4: 2.5 days lead 1 -> warning; 5: unused -> safe
		{filter: FilterAll, want: []string{"1", "2", "3", "4", "5"}},
		{filter: StatusFilter(StatusSafe), want: []string{"2", "5"}},
		{filter: StatusFilter(StatusWarning), want: []string{"1", "4"}},
		{filter: StatusFilter(StatusUrgent), want: []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			res := Apply(sampleItems(), Query{Status: tt.filter}, DefaultPolicy(), pipelineToday)
			assert.Equal(t, tt.want, ids(res.Items))
		})
	}
}

func TestApply_AllEqualsNoFilter(t *testing.T) {
	all := Apply(sampleItems(), Query{Status: FilterAll}, DefaultPolicy(), pipelineToday)
	none := Apply(sampleItems(), Query{}, DefaultPolicy(), pipelineToday)
	assert.Equal(t, ids(none.Items), ids(all.Items))
}

func TestApply_Sorts(t *testing.T) {
	tests := []struct {
		sort SortOption
		want []string
	}{
		{sort: SortStockAsc, want: []string{"4", "5", "2", "1", "3"}},
		{sort: SortStockDesc, want: []string{"3", "1", "2", "5", "4"}},
		// durations: 1=5, 2=5, 3=2.5, 4=2.5, 5=+Inf
		{sort: SortDurationAsc, want: []string{"3", "4", "1", "2", "5"}},
		{sort: SortDurationDesc, want: []string{"5", "1", "2", "3", "4"}},
		// lead times: 1=3, 2=2, 3=5, 4=1, 5=4
		{sort: SortLeadTimeAsc, want: []string{"4", "2", "1", "5", "3"}},
		{sort: SortLeadTimeDesc, want: []string{"3", "5", "1", "2", "4"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			res := Apply(sampleItems(), Query{Sort: tt.sort}, DefaultPolicy(), pipelineToday)
			assert.Equal(t, tt.want, ids(res.Items))
		})
	}
}

func TestApply_SortIsIdempotent(t *testing.T) {
	for _, opt := range SortOptions {
		res := Apply(sampleItems(), Query{Sort: opt}, DefaultPolicy(), pipelineToday)
		once := ids(res.Items)

		SortAssessed(res.Items, opt)
		assert.Equal(t, once, ids(res.Items), "sort %s", opt)
	}
}

func TestApply_SearchThenFilterThenSort(t *testing.T) {
	res := Apply(sampleItems(), Query{
		Search: "E",
		Status: StatusFilter(StatusWarning),
		Sort:   SortStockAsc,
	}, DefaultPolicy(), pipelineToday)

	assert.Equal(t, []string{"4", "1"}, ids(res.Items))
	assert.Equal(t, 5, res.TotalCount)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := sampleItems()
	before := append([]domain.Item(nil), items...)

	Apply(items, Query{Sort: SortStockDesc, Search: "g"}, DefaultPolicy(), pipelineToday)

	assert.Equal(t, before, items)
}

func TestApply_EmptyStates(t *testing.T) {
	empty := Apply(nil, Query{}, DefaultPolicy(), pipelineToday)
	assert.True(t, empty.IsInventoryEmpty())
	assert.False(t, empty.NoMatches())

	noMatch := Apply(sampleItems(), Query{Search: "coklat"}, DefaultPolicy(), pipelineToday)
	assert.False(t, noMatch.IsInventoryEmpty())
	assert.True(t, noMatch.NoMatches())
}

func TestApply_FilterIsSubset(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	items := make([]domain.Item, 0, 40)
	for i := 0; i < 40; i++ {
		items = append(items, domain.Item{
			ID:                   string(rune('a' + i%26)),
			Name:                 []string{"Flour", "Sugar", "Butter", "Box"}[i%4],
			Unit:                 "kg",
			CurrentStock:         float64(r.Intn(100)),
			RequirementPerRecipe: float64(r.Intn(4)) * 0.5,
			RecipesToday:         r.Intn(10),
			LeadTime:             r.Intn(7),
		})
	}

	filters := []StatusFilter{FilterAll, StatusFilter(StatusSafe), StatusFilter(StatusWarning), StatusFilter(StatusUrgent)}
	for _, f := range filters {
		for _, search := range []string{"", "flour", "U", "zzz"} {
			res := Apply(items, Query{Search: search, Status: f}, DefaultPolicy(), pipelineToday)
			assert.LessOrEqual(t, len(res.Items), len(items))
			assert.Equal(t, len(items), res.TotalCount)
		}
	}

	// status partitions cover the whole set
	total := 0
	for _, f := range filters[1:] {
		total += len(Apply(items, Query{Status: f}, DefaultPolicy(), pipelineToday).Items)
	}
	assert.Equal(t, len(items), total)
}

func TestParseSortOption(t *testing.T) {
	opt, err := ParseSortOption("")
	require.NoError(t, err)
	assert.Equal(t, SortDefault, opt)

	opt, err = ParseSortOption("duration_desc")
	require.NoError(t, err)
	assert.Equal(t, SortDurationDesc, opt)

	_, err = ParseSortOption("price_asc")
	assert.True(t, errors.Is(err, ErrInvalidSortOption))
}

func TestParseStatusFilter(t *testing.T) {
	f, err := ParseStatusFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	f, err = ParseStatusFilter("warning")
	require.NoError(t, err)
	assert.Equal(t, StatusFilter(StatusWarning), f)

	_, err = ParseStatusFilter("critical")
	assert.ErrorIs(t, err, ErrInvalidStatusFilter)
}

func TestCountByStatus(t *testing.T) {
	res := Apply(sampleItems(), Query{}, DefaultPolicy(), pipelineToday)
	counts := CountByStatus(res.Items)

	assert.Equal(t, 2, counts[StatusSafe])
	assert.Equal(t, 2, counts[StatusWarning])
	assert.Equal(t, 1, counts[StatusUrgent])
}
