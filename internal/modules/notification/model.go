package notification

import "time"

// Type tags the event that produced a notification.
type Type string

const (
	TypeNewOrder       Type = "new_order"
	TypeLowStock       Type = "low_stock"
	TypeOrderStatus    Type = "order_status"
	TypeShippingUpdate Type = "shipping_update"
)

// Notification is a system-generated alert shown in the admin feed.
type Notification struct {
	ID        int       `json:"id"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
