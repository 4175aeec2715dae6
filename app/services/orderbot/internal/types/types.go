// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

// WebhookRequest is the fulfillment payload posted by the NLU platform.
// Parameter values stay untyped because list entities wrap scalars in
// arrays and all numbers arrive as float64.
type WebhookRequest struct {
	ResponseId  string      `json:"responseId,optional"`
	Session     string      `json:"session"`
	QueryResult QueryResult `json:"queryResult"`
}

type QueryResult struct {
	QueryText  string         `json:"queryText,optional"`
	Parameters map[string]any `json:"parameters,optional"`
	Intent     Intent         `json:"intent"`
}

type Intent struct {
	Name        string `json:"name,optional"`
	DisplayName string `json:"displayName"`
}

// WebhookResponse is the fulfillment answer. Payload carries the structured
// order summary on review and confirmation turns.
type WebhookResponse struct {
	FulfillmentText string        `json:"fulfillmentText"`
	Payload         *OrderPayload `json:"payload,omitempty"`
}

type OrderPayload struct {
	OrderSummary []OrderRow `json:"order_summary"`
	TotalPrice   float64    `json:"total_price"`
	OrderNo      int64      `json:"order_no,omitempty"`
}

type OrderRow struct {
	FoodItem  string  `json:"food_item"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LinePrice float64 `json:"line_price"`
}

// GetMenuResponse lists the full menu board in display order.
type GetMenuResponse struct {
	Items []MenuItem `json:"items"`
}

type MenuItem struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Ingredients []string `json:"ingredients,omitempty"`
	Modifiable  []string `json:"modifiable,omitempty"`
}

// GetOrderRequest fetches the live cart for one session.
type GetOrderRequest struct {
	SessionId string `path:"sessionId"`
}

type GetOrderResponse struct {
	SessionId    string     `json:"session_id"`
	OrderSummary []OrderRow `json:"order_summary"`
	TotalPrice   float64    `json:"total_price"`
}
