package stock

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/stockwatch/internal/inventory/domain"
)

func item(stock, perRecipe float64, recipes, leadTime int) domain.Item {
	return domain.Item{
		ID:                   "test",
		Name:                 "Test Item",
		Unit:                 "kg",
		CurrentStock:         stock,
		RequirementPerRecipe: perRecipe,
		RecipesToday:         recipes,
		LeadTime:             leadTime,
	}
}

func TestEvaluate_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		item         domain.Item
		wantDaily    float64
		wantDuration float64
		wantStatus   Status
		wantOrderIn  int
	}{
		{
			name:         "flour on the reorder point is a warning",
			item:         item(50, 0.5, 20, 3),
			wantDaily:    10,
			wantDuration: 5,
			wantStatus:   StatusWarning,
			wantOrderIn:  2,
		},
		{
			name:         "butter between lead time and reorder point",
			item:         item(5, 0.1, 20, 1),
			wantDaily:    2,
			wantDuration: 2.5,
			wantStatus:   StatusWarning,
			wantOrderIn:  1,
		},
		{
			name:         "duration below lead time is urgent",
			item:         item(3, 1, 3, 5),
			wantDaily:    3,
			wantDuration: 1,
			wantStatus:   StatusUrgent,
		},
		{
			name:         "duration equal to lead time is urgent",
			item:         item(30, 1, 10, 3),
			wantDaily:    10,
			wantDuration: 3,
			wantStatus:   StatusUrgent,
		},
		{
			name:         "plenty of stock is safe",
			item:         item(200, 1, 10, 5),
			wantDaily:    10,
			wantDuration: 20,
			wantStatus:   StatusSafe,
			wantOrderIn:  15,
		},
		{
			name:         "empty stock with usage and no lead time is urgent",
			item:         item(0, 1, 1, 0),
			wantDaily:    1,
			wantDuration: 0,
			wantStatus:   StatusUrgent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := Evaluate(tt.item, DefaultPolicy())

			assert.InDelta(t, tt.wantDaily, eval.DailyRequirement, 1e-9)
			assert.InDelta(t, tt.wantDuration, eval.StockDurationDays, 1e-9)
			assert.Equal(t, tt.wantStatus, eval.Status)
			assert.Equal(t, tt.wantOrderIn, eval.OrderInDays)
			assert.NotEmpty(t, eval.Recommendation)
		})
	}
}

func TestEvaluate_ZeroUsageIsAlwaysSafe(t *testing.T) {
	cases := []domain.Item{
		item(0, 1, 0, 10),
		item(0, 0, 50, 10),
		item(1000, 0, 0, 0),
		item(0, 0, 0, 0),
	}

	for _, it := range cases {
		eval := Evaluate(it, DefaultPolicy())
		assert.Equal(t, StatusSafe, eval.Status)
		assert.True(t, math.IsInf(eval.StockDurationDays, 1))
		assert.False(t, eval.HasUsage())
		assert.False(t, eval.DurationBounded())
		assert.Equal(t, "No daily usage, stock is safe.", eval.Recommendation)

		_, ok := PredictedEmptyDate(it, time.Now())
		assert.False(t, ok)
	}
}

func TestEvaluate_StatusBands(t *testing.T) {
	// one unit per day so the duration equals the stock
	for leadTime := 0; leadTime <= 6; leadTime++ {
		for stock := 0.0; stock <= 12; stock += 0.25 {
			eval := Evaluate(item(stock, 1, 1, leadTime), DefaultPolicy())
			lt := float64(leadTime)

			switch {
			case stock <= lt:
				assert.Equal(t, StatusUrgent, eval.Status, "stock=%v lead=%d", stock, leadTime)
			case stock <= lt+2:
				assert.Equal(t, StatusWarning, eval.Status, "stock=%v lead=%d", stock, leadTime)
			default:
				assert.Equal(t, StatusSafe, eval.Status, "stock=%v lead=%d", stock, leadTime)
			}
		}
	}
}

func TestEvaluate_CustomSafetyMargin(t *testing.T) {
	it := item(60, 1, 10, 3) // 6 days of stock

	assert.Equal(t, StatusSafe, Evaluate(it, DefaultPolicy()).Status)
	assert.Equal(t, StatusWarning, Evaluate(it, Policy{SafetyMarginDays: 3}).Status)
	assert.Equal(t, StatusSafe, Evaluate(item(40, 1, 10, 3), Policy{SafetyMarginDays: 0}).Status)
}

func TestEvaluate_Recommendations(t *testing.T) {
	assert.Equal(t,
		"Time to order. Order within the next 2 days.",
		Evaluate(item(50, 0.5, 20, 3), DefaultPolicy()).Recommendation)
	assert.Equal(t,
		"Stock is sufficient. The ideal time to order is in 15 days.",
		Evaluate(item(200, 1, 10, 5), DefaultPolicy()).Recommendation)
	assert.Equal(t,
		"Reorder now! Stock will run out before a new order can arrive.",
		Evaluate(item(3, 1, 3, 5), DefaultPolicy()).Recommendation)
}

func TestPredictedEmptyDate(t *testing.T) {
	today := time.Date(2025, 9, 16, 14, 30, 0, 0, time.UTC)

	date, ok := PredictedEmptyDate(item(5, 0.1, 20, 1), today)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 9, 18, 0, 0, 0, 0, time.UTC), date)

	date, ok = PredictedEmptyDate(item(0, 1, 1, 0), today)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC), date)

	// month and year rollover
	date, ok = PredictedEmptyDate(item(200, 1, 10, 0), time.Date(2025, 12, 25, 8, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), date)
}

func TestPredictedEmptyDate_ConsistentWithDuration(t *testing.T) {
	today := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	it := item(37, 0.7, 9, 2)

	eval := Evaluate(it, DefaultPolicy())
	date, ok := PredictedEmptyDate(it, today)
	require.True(t, ok)

	days := int(date.Sub(today).Hours() / 24)
	assert.Equal(t, int(math.Floor(eval.StockDurationDays)), days)
}

func TestAssess(t *testing.T) {
	today := time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC)

	a := Assess(item(50, 0.5, 20, 3), DefaultPolicy(), today)
	require.NotNil(t, a.PredictedEmptyDate)
	assert.Equal(t, time.Date(2025, 9, 21, 0, 0, 0, 0, time.UTC), *a.PredictedEmptyDate)
	assert.Equal(t, StatusWarning, a.Evaluation.Status)

	a = Assess(item(50, 0.5, 0, 3), DefaultPolicy(), today)
	assert.Nil(t, a.PredictedEmptyDate)
}

func TestEvaluate_HugeDurationSaturates(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		item domain.Item
	}{
		{"1e21 days", item(1e12, 1e-9, 1, 3)},
		{"1e15 days", item(1e6, 1e-9, 1, 3)},
		{"just past the horizon", item(MaxForecastDays+10, 1, 1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := Evaluate(tt.item, DefaultPolicy())
			assert.Equal(t, StatusSafe, eval.Status)
			assert.Equal(t, MaxForecastDays, eval.OrderInDays)
			assert.Contains(t, eval.Recommendation, "in 1000000 days")

			_, ok := PredictedEmptyDate(tt.item, today)
			assert.False(t, ok)
			assert.Nil(t, Assess(tt.item, DefaultPolicy(), today).PredictedEmptyDate)
		})
	}
}

func TestPredictedEmptyDate_AtForecastHorizon(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	it := item(MaxForecastDays, 1, 1, 3)

	date, ok := PredictedEmptyDate(it, today)
	require.True(t, ok)
	assert.Equal(t, AddDays(today, MaxForecastDays), date)
	assert.True(t, date.After(today))
	assert.Equal(t, MaxForecastDays-3, Evaluate(it, DefaultPolicy()).OrderInDays)
}
