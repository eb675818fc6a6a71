package order

import "time"

// OrderStatus is the business lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// ShippingStatus tracks physical fulfillment, independent of OrderStatus.
type ShippingStatus string

const (
	ShippingPreparing      ShippingStatus = "preparing"
	ShippingShipped        ShippingStatus = "shipped"
	ShippingInTransit      ShippingStatus = "in_transit"
	ShippingOutForDelivery ShippingStatus = "out_for_delivery"
	ShippingDelivered      ShippingStatus = "delivered"
)

// statusLabels maps order statuses to the storefront's display labels.
var statusLabels = map[OrderStatus]string{
	StatusPending:    "قيد الانتظار",
	StatusProcessing: "قيد المعالجة",
	StatusCompleted:  "مكتمل",
	StatusCancelled:  "ملغي",
}

// shippingLabels maps shipping statuses to display labels.
var shippingLabels = map[ShippingStatus]string{
	ShippingPreparing:      "جاري التجهيز",
	ShippingShipped:        "تم الشحن",
	ShippingInTransit:      "في الطريق",
	ShippingOutForDelivery: "خارج للتوصيل",
	ShippingDelivered:      "تم التوصيل",
}

// StatusLabel returns the display label for an order status.
// Unrecognized statuses yield an empty label.
func StatusLabel(s OrderStatus) string { return statusLabels[s] }

// ShippingStatusLabel returns the display label for a shipping status,
// falling back to the raw status for unrecognized values.
func ShippingStatusLabel(s ShippingStatus) string {
	if label, ok := shippingLabels[s]; ok {
		return label
	}
	return string(s)
}

// Order is a customer purchase with its computed totals.
type Order struct {
	ID              int            `json:"id"`
	CustomerID      int            `json:"customerId"`
	Status          OrderStatus    `json:"status"`
	ShippingStatus  ShippingStatus `json:"shippingStatus,omitempty"`
	TrackingNumber  string         `json:"trackingNumber,omitempty"`
	ShippingAddress string         `json:"shippingAddress"`
	ShippingCity    string         `json:"shippingCity"`
	ShippingCountry string         `json:"shippingCountry"`
	Subtotal        float64        `json:"subtotal"`
	Discount        float64        `json:"discount"`
	ShippingCost    float64        `json:"shippingCost"`
	Total           float64        `json:"total"`
	Profit          float64        `json:"profit"`
	Items           []*OrderItem   `json:"items,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// OrderItem is one product line within an order. Price and wholesale price
// are snapshotted at order time so later catalog edits do not rewrite
// historical orders.
type OrderItem struct {
	ID             int     `json:"id"`
	OrderID        int     `json:"orderId"`
	ProductID      int     `json:"productId"`
	Quantity       int     `json:"quantity"`
	WholesalePrice float64 `json:"wholesalePrice"`
	Price          float64 `json:"price"`
	Profit         float64 `json:"profit"`
}

// OrderShippingUpdate is one timestamped entry in an order's tracking history.
type OrderShippingUpdate struct {
	ID          int            `json:"id"`
	OrderID     int            `json:"orderId"`
	Status      ShippingStatus `json:"status"`
	Location    string         `json:"location,omitempty"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
}

// LineItem is one requested product line in a checkout.
type LineItem struct {
	ProductID int     `json:"productId"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// PlaceOrderRequest is the payload for creating an order.
type PlaceOrderRequest struct {
	CustomerID      int        `json:"customerId"`
	Items           []LineItem `json:"items"`
	Discount        float64    `json:"discount,omitempty"` // percentage, 0-100
	ShippingAddress string     `json:"shippingAddress,omitempty"`
	ShippingCity    string     `json:"shippingCity,omitempty"`
	ShippingCountry string     `json:"shippingCountry,omitempty"`
}

// PatchOrderRequest is a shallow patch: only non-nil fields are applied.
type PatchOrderRequest struct {
	Status          *string  `json:"status,omitempty"`
	TrackingNumber  *string  `json:"trackingNumber,omitempty"`
	ShippingAddress *string  `json:"shippingAddress,omitempty"`
	ShippingCity    *string  `json:"shippingCity,omitempty"`
	ShippingCountry *string  `json:"shippingCountry,omitempty"`
	ShippingCost    *float64 `json:"shippingCost,omitempty"`
}

// ShippingUpdateRequest is the payload for appending a tracking entry.
type ShippingUpdateRequest struct {
	Status      string `json:"status"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
}
