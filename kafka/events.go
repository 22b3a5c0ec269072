package kafka

import "time"

// StockEvent describes a change to a product's stock position
type StockEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	ProductID    string    `json:"product_id"`
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorder_level"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

// RestockRequestedEvent asks the service to add stock to a product
type RestockRequestedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeProductCreated   = "product.created"
	EventTypeProductUpdated   = "product.updated"
	EventTypeProductDeleted   = "product.deleted"
	EventTypeProductRestocked = "product.restocked"
	EventTypeStockLow         = "stock.low"
	EventTypeRestockRequested = "restock.requested"
)

// Kafka topics
const (
	TopicStockEvents = "inventory-stock-events"
	TopicRestock     = "inventory-restock"
)
