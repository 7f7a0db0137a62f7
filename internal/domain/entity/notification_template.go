package entity

import "time"

// NotificationTemplate holds a shop's message templates, one per event type.
// Persisted and tenant-scoped, lazily created with defaults on first read.
type NotificationTemplate struct {
	ShopID    string
	Templates map[string]string // event type -> template text
	UpdatedAt time.Time
}

// DefaultNotificationTemplate returns the templates a shop starts with.
// Placeholders use {{field}} syntax and are substituted by the subscriber side.
func DefaultNotificationTemplate(shopID string) *NotificationTemplate {
	return &NotificationTemplate{
		ShopID: shopID,
		Templates: map[string]string{
			"new-order":           "New order {{orderNumber}} received",
			"order-status-update": "Order {{orderNumber}} is now {{status}}",
			"order-cancelled":     "Order {{orderNumber}} was cancelled",
			"low-stock-alert":     "{{name}} is low on stock: {{currentStock}} left (min {{minStock}})",
			"table-status-update": "Table {{number}} is now {{status}}",
		},
		UpdatedAt: time.Now(),
	}
}
