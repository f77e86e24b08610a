package kafka

import "time"

// ReorderAlertEvent is emitted when a write leaves an item in WARNING or URGENT status
type ReorderAlertEvent struct {
	EventID            string     `json:"event_id"`
	EventType          string     `json:"event_type"`
	ItemID             string     `json:"item_id"`
	ItemName           string     `json:"item_name"`
	Unit               string     `json:"unit"`
	CurrentStock       float64    `json:"current_stock"`
	DailyRequirement   float64    `json:"daily_requirement"`
	StockDurationDays  float64    `json:"stock_duration_days"`
	LeadTime           int        `json:"lead_time"`
	Status             string     `json:"status"`
	OrderInDays        int        `json:"order_in_days"`
	Recommendation     string     `json:"recommendation"`
	PredictedEmptyDate *time.Time `json:"predicted_empty_date,omitempty"`
	SupplierWhatsapp   string     `json:"supplier_whatsapp,omitempty"`
	ReorderURL         string     `json:"reorder_url,omitempty"`
	Timestamp          time.Time  `json:"timestamp"`
}

// Event types
const (
	EventTypeReorderAlert = "stock.reorder_alert"
)

// Kafka topics
const (
	TopicReorderAlerts = "stock-reorder-alerts"
)
