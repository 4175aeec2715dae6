package mq

// OrderPlacedEvent is the payload published to Kafka when a customer
// confirms an order. Downstream consumers (kitchen display, receipts,
// analytics) key off the order number.
type OrderPlacedEvent struct {
	OrderNo    int64            `json:"order_no"`
	SessionId  string           `json:"session_id"`
	Items      []OrderEventItem `json:"items"`
	TotalCents int64            `json:"total_cents"`
	PlacedAt   int64            `json:"placed_at"`
}

type OrderEventItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitCents int64  `json:"unit_cents"`
}

// Asynq task type for kitchen preparation
const TaskPrepareOrder = "order:prepare"

// PrepareTaskPayload is the asynq payload for the kitchen prep task.
type PrepareTaskPayload struct {
	OrderNo   int64  `json:"order_no"`
	SessionId string `json:"session_id"`
}
